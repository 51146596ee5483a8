package fatturapa

// Party is an organization (Denomination) or an individual (FirstName and
// LastName). Denomination wins when both are set.
type Party struct {
	Denomination string
	FirstName    string
	LastName     string
	TaxCode      string // codice fiscale
	VATNumber    string // partita IVA, without country prefix
	CountryCode  string
	Address      Address
}

// Sender is the issuing party (cedente/prestatore), also acting as
// transmitter of the document.
type Sender struct {
	Party
	TransmitterCode string
	TaxRegime       string
}

// IsIndividual reports whether the party is identified by a name pair.
func (p Party) IsIndividual() bool {
	return p.Denomination == "" && p.FirstName != "" && p.LastName != ""
}

// DisplayName returns the denomination, or "First Last" for individuals.
func (p Party) DisplayName() string {
	if p.Denomination != "" {
		return p.Denomination
	}
	return p.FirstName + " " + p.LastName
}

func (s Sender) String() string {
	return s.DisplayName()
}

func (p Party) registry(field string) (Registry, error) {
	if p.Denomination != "" {
		if err := checkLatin(field+".Denomination", p.Denomination); err != nil {
			return Registry{}, err
		}
		return Registry{Denomination: p.Denomination}, nil
	}
	if !p.IsIndividual() {
		return Registry{}, missing(field + ".Denomination")
	}
	for _, n := range []struct{ name, value string }{{"FirstName", p.FirstName}, {"LastName", p.LastName}} {
		if err := checkLatin(field+"."+n.name, n.value); err != nil {
			return Registry{}, err
		}
	}
	return Registry{FirstName: p.FirstName, LastName: p.LastName}, nil
}

// transmitterID builds IdTrasmittente: the country and the tax code with the
// configured prefix.
func (s Sender) transmitterID(prefix string) (FiscalID, error) {
	if s.CountryCode == "" {
		return FiscalID{}, missing("Sender.CountryCode")
	}
	if s.TaxCode == "" {
		return FiscalID{}, missing("Sender.TaxCode")
	}
	return FiscalID{Country: s.CountryCode, Code: prefix + s.TaxCode}, nil
}

func (s Sender) supplier() (Supplier, error) {
	if s.TaxRegime == "" {
		return Supplier{}, missing("Sender.TaxRegime")
	}
	registry, err := s.registry("Sender")
	if err != nil {
		return Supplier{}, err
	}
	seat, err := s.Address.seat("Sender.Address")
	if err != nil {
		return Supplier{}, err
	}

	details := SupplierDetails{
		VATID:     FiscalID{Country: s.CountryCode, Code: s.TaxCode},
		Registry:  registry,
		TaxRegime: s.TaxRegime,
	}
	if s.VATNumber != "" {
		details.VATID.Code = s.VATNumber
		details.TaxCode = s.TaxCode
	}
	return Supplier{Details: details, Seat: seat}, nil
}

func (p Party) customer() (Customer, error) {
	if p.TaxCode == "" && p.VATNumber == "" {
		return Customer{}, missing("Recipient.TaxCode")
	}
	registry, err := p.registry("Recipient")
	if err != nil {
		return Customer{}, err
	}
	seat, err := p.Address.seat("Recipient.Address")
	if err != nil {
		return Customer{}, err
	}

	details := CustomerDetails{TaxCode: p.TaxCode, Registry: registry}
	if p.VATNumber != "" {
		if p.CountryCode == "" {
			return Customer{}, missing("Recipient.CountryCode")
		}
		details.VATID = &FiscalID{Country: p.CountryCode, Code: p.VATNumber}
	}
	return Customer{Details: details, Seat: seat}, nil
}
