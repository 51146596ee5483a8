package fatturapa

// Address is a postal address. Postcode, City and Province are optional for
// display; the document requires Postcode and City.
type Address struct {
	Street      string
	Postcode    string
	City        string
	Province    string
	CountryCode string
}

// String renders "Street City (PR) [CC]". City and province are written only
// when both are set.
func (a Address) String() string {
	out := a.Street
	if a.City != "" && a.Province != "" {
		out += " " + a.City + " (" + a.Province + ")"
	}
	return out + " [" + a.CountryCode + "]"
}

func (a Address) seat(field string) (Seat, error) {
	required := []struct{ name, value string }{
		{"Street", a.Street},
		{"Postcode", a.Postcode},
		{"City", a.City},
		{"CountryCode", a.CountryCode},
	}
	for _, r := range required {
		if r.value == "" {
			return Seat{}, missing(field + "." + r.name)
		}
	}
	for _, s := range []struct{ name, value string }{{"Street", a.Street}, {"City", a.City}} {
		if err := checkLatin(field+"."+s.name, s.value); err != nil {
			return Seat{}, err
		}
	}
	return Seat{
		Street:   a.Street,
		Postcode: a.Postcode,
		City:     a.City,
		Province: a.Province,
		Country:  a.CountryCode,
	}, nil
}
