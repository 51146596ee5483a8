// Package fatturapa builds Italian electronic invoices (FatturaPA v1.2).
//
// An Invoice is turned into a FatturaElettronica document with Document or
// Generate. The result can be validated with the validate package.
// Schema: https://www.fatturapa.gov.it/it/norme-e-regole/documentazione-fattura-elettronica/formato-fatturapa/
package fatturapa

import (
	"encoding/xml"
	"fmt"
	"time"
	"unicode/utf8"
)

// reasonSize is the maximum length, in characters, of one Causale element.
const reasonSize = 200

// placeholderRecipientCode routes the document by PEC or leaves it in the
// recipient's tax drawer.
const placeholderRecipientCode = "0000000"

// Invoice is the complete input of the document. It is never modified.
type Invoice struct {
	Sender    Sender
	Recipient Party

	Number             string
	Type               string // TipoDocumento, e.g. TD01
	Date               time.Time
	Currency           string
	TransmissionFormat string // FPR12 or FPA12
	RecipientCode      string
	RecipientPEC       string

	Lines  []InvoiceLine
	Reason string

	PaymentMethod    PaymentMethod
	PaymentCondition PaymentCondition
	PaymentDue       time.Time
	IBAN             string

	// Summary replaces the buckets computed by Aggregate when non-empty.
	Summary []TaxSummary
}

// Options tune business rules that are not part of the invoice data. Start
// from DefaultOptions: the zero value has no transmitter prefix.
type Options struct {
	// TransmitterPrefix is prepended to the sender tax code in IdTrasmittente.
	// Empty means the tax code is used as is.
	TransmitterPrefix string
	SummaryStyle      SummaryStyle
}

// DefaultOptions uses the "PI" transmitter prefix and fixed summary amounts.
func DefaultOptions() Options {
	return Options{TransmitterPrefix: "PI", SummaryStyle: SummaryFixed}
}

// Document assembles the document tree with the default options.
func (inv *Invoice) Document() (*Document, error) {
	return inv.DocumentWithOptions(DefaultOptions())
}

// DocumentWithOptions assembles the document tree. It returns either a
// complete document or an error wrapping ErrDataCompleteness or ErrFormat.
func (inv *Invoice) DocumentWithOptions(opts Options) (*Document, error) {
	header, err := inv.header(opts)
	if err != nil {
		return nil, err
	}
	body, err := inv.body(opts)
	if err != nil {
		return nil, err
	}
	return &Document{
		XMLName: xml.Name{Local: rootName},
		Xmlns:   Namespace,
		Version: inv.TransmissionFormat,
		Header:  header,
		Body:    body,
	}, nil
}

func (inv *Invoice) header(opts Options) (Header, error) {
	if inv.Number == "" {
		return Header{}, missing("Number")
	}
	if inv.TransmissionFormat == "" {
		return Header{}, missing("TransmissionFormat")
	}
	transmitter, err := inv.Sender.transmitterID(opts.TransmitterPrefix)
	if err != nil {
		return Header{}, err
	}
	supplier, err := inv.Sender.supplier()
	if err != nil {
		return Header{}, err
	}
	customer, err := inv.Recipient.customer()
	if err != nil {
		return Header{}, err
	}

	recipientCode := inv.RecipientCode
	if recipientCode == "" {
		recipientCode = placeholderRecipientCode
	}
	return Header{
		Transmission: Transmission{
			TransmitterID: transmitter,
			ProgressiveID: inv.Number,
			Format:        inv.TransmissionFormat,
			RecipientCode: recipientCode,
			RecipientPEC:  inv.RecipientPEC,
		},
		Supplier: supplier,
		Customer: customer,
	}, nil
}

func (inv *Invoice) body(opts Options) (Body, error) {
	switch {
	case inv.Type == "":
		return Body{}, missing("Type")
	case inv.Currency == "":
		return Body{}, missing("Currency")
	case inv.Date.IsZero():
		return Body{}, missing("Date")
	}
	if err := checkLatin("Reason", inv.Reason); err != nil {
		return Body{}, err
	}

	lines, err := encodeLines(inv.Lines)
	if err != nil {
		return Body{}, err
	}
	buckets := inv.Summary
	if len(buckets) == 0 {
		buckets = Aggregate(inv.Lines)
	}
	summary, total, err := encodeSummary(buckets, opts.SummaryStyle)
	if err != nil {
		return Body{}, err
	}
	payment, err := inv.payment(formatAmount(total))
	if err != nil {
		return Body{}, err
	}

	return Body{
		General: GeneralData{Document: GeneralDocument{
			Type:     inv.Type,
			Currency: inv.Currency,
			Date:     inv.Date.Format(time.DateOnly),
			Number:   inv.Number,
			Total:    formatAmount(total),
			Reasons:  splitReason(inv.Reason),
		}},
		Goods:   GoodsServices{Lines: lines, Summary: summary},
		Payment: payment,
	}, nil
}

func (inv *Invoice) payment(amount string) (*PaymentData, error) {
	method := inv.PaymentMethod
	if method == "" {
		method = DefaultPaymentMethod
	}
	if !method.Valid() {
		return nil, malformed("PaymentMethod", fmt.Sprintf("unknown code %q", method))
	}
	condition := inv.PaymentCondition
	if condition == "" {
		condition = DefaultPaymentCondition
	}
	if !condition.Valid() {
		return nil, malformed("PaymentCondition", fmt.Sprintf("unknown code %q", condition))
	}

	detail := PaymentDetail{
		Method: string(method),
		Amount: amount,
		IBAN:   inv.IBAN,
	}
	if !inv.PaymentDue.IsZero() {
		detail.DueDate = inv.PaymentDue.Format(time.DateOnly)
	}
	return &PaymentData{Condition: string(condition), Details: []PaymentDetail{detail}}, nil
}

// splitReason cuts s into chunks of at most reasonSize characters. The
// concatenation of the chunks is s.
func splitReason(s string) []string {
	var chunks []string
	for len(s) > 0 {
		end, n := 0, 0
		for end < len(s) && n < reasonSize {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			n++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}

// Generate returns the indented XML document with its declaration.
func (inv *Invoice) Generate() ([]byte, error) {
	return inv.GenerateWithOptions(DefaultOptions())
}

func (inv *Invoice) GenerateWithOptions(opts Options) ([]byte, error) {
	doc, err := inv.DocumentWithOptions(opts)
	if err != nil {
		return nil, err
	}
	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("xml marshal failed: %w", err)
	}
	return []byte(xml.Header + string(output)), nil
}

// Parse decodes a FatturaElettronica document. It checks well-formedness
// only; use the validate package for the schema.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("xml unmarshal failed: %w", err)
	}
	if doc.XMLName.Local != "FatturaElettronica" || doc.XMLName.Space != Namespace {
		return nil, fmt.Errorf("%w: unexpected root element %q", ErrSchemaViolation, doc.XMLName.Local)
	}
	return &doc, nil
}

// Filename returns the name the document is transmitted and archived under.
func (inv *Invoice) Filename() string {
	return inv.Sender.CountryCode + inv.Sender.TransmitterCode + "_" + inv.Number + ".xml"
}

func (inv *Invoice) String() string {
	return "[Fattura/" + inv.Number + "] " + inv.Recipient.DisplayName() + ": " + inv.Reason
}
