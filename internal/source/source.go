// Package source reads invoices from YAML (or JSON) files into
// fatturapa.Invoice values.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/verscheures/fatturapa"
)

// Decimal is a decimal scalar. Quoted and unquoted numbers are accepted.
type Decimal struct {
	decimal.Decimal
}

func (d *Decimal) UnmarshalYAML(node *yaml.Node) error {
	v, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w: %q is not a decimal", node.Line, fatturapa.ErrFormat, node.Value)
	}
	d.Decimal = v
	return nil
}

type Address struct {
	Street      string `yaml:"street"`
	Postcode    string `yaml:"postcode"`
	City        string `yaml:"city"`
	Province    string `yaml:"province"`
	CountryCode string `yaml:"country_code"`
}

type Party struct {
	Denomination string  `yaml:"denomination"`
	FirstName    string  `yaml:"first_name"`
	LastName     string  `yaml:"last_name"`
	TaxCode      string  `yaml:"tax_code"`
	VATNumber    string  `yaml:"vat_number"`
	CountryCode  string  `yaml:"country_code"`
	Address      Address `yaml:"address"`
}

type Sender struct {
	Party           `yaml:",inline"`
	TransmitterCode string `yaml:"transmitter_code"`
	TaxRegime       string `yaml:"tax_regime"`
}

type Line struct {
	Description string  `yaml:"description"`
	Quantity    Decimal `yaml:"quantity"`
	UnitPrice   Decimal `yaml:"unit_price"`
	TotalPrice  Decimal `yaml:"total_price"`
	VATRate     Decimal `yaml:"vat_rate"`
	Nature      string  `yaml:"nature"`
}

type Summary struct {
	VATRate       Decimal `yaml:"vat_rate"`
	Nature        string  `yaml:"nature"`
	TaxableAmount Decimal `yaml:"taxable_amount"`
	TaxAmount     Decimal `yaml:"tax_amount"`
}

// File is the on-disk layout of an invoice.
type File struct {
	Sender             Sender    `yaml:"sender"`
	Recipient          Party     `yaml:"recipient"`
	Number             string    `yaml:"number"`
	Type               string    `yaml:"type"`
	Date               string    `yaml:"date"`
	Currency           string    `yaml:"currency"`
	TransmissionFormat string    `yaml:"transmission_format"`
	RecipientCode      string    `yaml:"recipient_code"`
	RecipientPEC       string    `yaml:"recipient_pec"`
	Reason             string    `yaml:"reason"`
	PaymentMethod      string    `yaml:"payment_method"`
	PaymentCondition   string    `yaml:"payment_condition"`
	PaymentDue         string    `yaml:"payment_due"`
	IBAN               string    `yaml:"iban"`
	Lines              []Line    `yaml:"lines"`
	Summary            []Summary `yaml:"summary"`
}

// Load reads the invoice stored at path.
func Load(path string) (*fatturapa.Invoice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inv, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}

// Decode reads one invoice. Unknown keys are rejected.
func Decode(r io.Reader) (*fatturapa.Invoice, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty invoice file")
		}
		return nil, err
	}
	return file.Invoice()
}

// Invoice converts the file into an invoice.
func (f *File) Invoice() (*fatturapa.Invoice, error) {
	date, err := parseDate("date", f.Date)
	if err != nil {
		return nil, err
	}
	due, err := parseDate("payment_due", f.PaymentDue)
	if err != nil {
		return nil, err
	}

	inv := &fatturapa.Invoice{
		Sender: fatturapa.Sender{
			Party:           f.Sender.Party.party(),
			TransmitterCode: f.Sender.TransmitterCode,
			TaxRegime:       f.Sender.TaxRegime,
		},
		Recipient:          f.Recipient.party(),
		Number:             f.Number,
		Type:               f.Type,
		Date:               date,
		Currency:           f.Currency,
		TransmissionFormat: f.TransmissionFormat,
		RecipientCode:      f.RecipientCode,
		RecipientPEC:       f.RecipientPEC,
		Reason:             f.Reason,
		PaymentMethod:      fatturapa.PaymentMethod(f.PaymentMethod),
		PaymentCondition:   fatturapa.PaymentCondition(f.PaymentCondition),
		PaymentDue:         due,
		IBAN:               f.IBAN,
	}
	for _, l := range f.Lines {
		inv.Lines = append(inv.Lines, fatturapa.InvoiceLine{
			Description: l.Description,
			Quantity:    l.Quantity.Decimal,
			UnitPrice:   l.UnitPrice.Decimal,
			TotalPrice:  l.TotalPrice.Decimal,
			VATRate:     l.VATRate.Decimal,
			Nature:      l.Nature,
		})
	}
	for _, s := range f.Summary {
		inv.Summary = append(inv.Summary, fatturapa.TaxSummary{
			VATRate:       s.VATRate.Decimal,
			Nature:        s.Nature,
			TaxableAmount: s.TaxableAmount.Decimal,
			TaxAmount:     s.TaxAmount.Decimal,
		})
	}
	return inv, nil
}

func (p Party) party() fatturapa.Party {
	return fatturapa.Party{
		Denomination: p.Denomination,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		TaxCode:      p.TaxCode,
		VATNumber:    p.VATNumber,
		CountryCode:  p.CountryCode,
		Address: fatturapa.Address{
			Street:      p.Address.Street,
			Postcode:    p.Address.Postcode,
			City:        p.Address.City,
			Province:    p.Address.Province,
			CountryCode: p.Address.CountryCode,
		},
	}
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, &fatturapa.FieldError{Field: field, Message: "expected YYYY-MM-DD", Err: fatturapa.ErrFormat}
	}
	return t, nil
}
