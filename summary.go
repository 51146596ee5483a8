package fatturapa

import "github.com/shopspring/decimal"

// TaxSummary is one DatiRiepilogo bucket.
type TaxSummary struct {
	VATRate       decimal.Decimal
	Nature        string
	TaxableAmount decimal.Decimal
	TaxAmount     decimal.Decimal
}

// Aggregate groups lines by VAT rate, in order of first appearance. The
// taxable amount is the exact sum of the line totals; the tax is rounded
// half away from zero to cents. Rates are compared by value, so 22 and 22.00
// share a bucket.
func Aggregate(lines []InvoiceLine) []TaxSummary {
	var buckets []TaxSummary
	index := make(map[string]int)
	for _, line := range lines {
		key := line.VATRate.String()
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, TaxSummary{VATRate: line.VATRate, Nature: line.Nature})
		}
		buckets[i].TaxableAmount = buckets[i].TaxableAmount.Add(line.Total())
	}
	for i := range buckets {
		buckets[i].TaxAmount = buckets[i].TaxableAmount.Mul(buckets[i].VATRate).Div(hundred).Round(2)
	}
	return buckets
}

func encodeSummary(buckets []TaxSummary, style SummaryStyle) ([]SummaryData, decimal.Decimal, error) {
	var total decimal.Decimal
	out := make([]SummaryData, 0, len(buckets))
	for i, b := range buckets {
		if err := checkRate("Summary.VATRate", b.VATRate); err != nil {
			return nil, total, atLine(i+1, err)
		}
		for _, a := range []struct {
			name  string
			value decimal.Decimal
		}{
			{"Summary.TaxableAmount", b.TaxableAmount},
			{"Summary.TaxAmount", b.TaxAmount},
		} {
			if err := checkAmount(a.name, a.value); err != nil {
				return nil, total, atLine(i+1, err)
			}
		}
		total = total.Add(b.TaxableAmount).Add(b.TaxAmount)
		out = append(out, SummaryData{
			VATRate:       style.format(b.VATRate),
			Nature:        b.Nature,
			TaxableAmount: style.format(b.TaxableAmount),
			Tax:           style.format(b.TaxAmount),
		})
	}
	return out, total, nil
}
