package fatturapa

import "github.com/shopspring/decimal"

// InvoiceLine is one DettaglioLinee entry. Its line number is its 1-based
// position in Invoice.Lines.
type InvoiceLine struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	// TotalPrice zero means Quantity * UnitPrice.
	TotalPrice decimal.Decimal
	// VATRate is a percentage, e.g. 22.
	VATRate decimal.Decimal
	// Nature is the VAT exemption code (N1..N7) for zero-rated lines.
	Nature string
}

// Total returns the line total used in the document and the summary.
func (l InvoiceLine) Total() decimal.Decimal {
	if l.TotalPrice.IsZero() {
		return l.Quantity.Mul(l.UnitPrice)
	}
	return l.TotalPrice
}

func encodeLines(lines []InvoiceLine) ([]LineDetail, error) {
	if len(lines) == 0 {
		return nil, missing("Lines")
	}

	details := make([]LineDetail, 0, len(lines))
	for i, line := range lines {
		n := i + 1
		if line.Description == "" {
			return nil, atLine(n, missing("Description"))
		}
		if err := checkLatin("Description", line.Description); err != nil {
			return nil, atLine(n, err)
		}
		total := line.Total()
		for _, a := range []struct {
			name  string
			value decimal.Decimal
		}{
			{"Quantity", line.Quantity},
			{"UnitPrice", line.UnitPrice},
			{"TotalPrice", total},
		} {
			if err := checkAmount(a.name, a.value); err != nil {
				return nil, atLine(n, err)
			}
		}
		if err := checkRate("VATRate", line.VATRate); err != nil {
			return nil, atLine(n, err)
		}

		details = append(details, LineDetail{
			Number:      n,
			Description: line.Description,
			Quantity:    formatAmount(line.Quantity),
			UnitPrice:   formatAmount(line.UnitPrice),
			TotalPrice:  formatAmount(total),
			VATRate:     formatAmount(line.VATRate),
			Nature:      line.Nature,
		})
	}
	return details, nil
}
