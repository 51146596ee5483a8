package fatturapa

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SummaryStyle selects how DatiRiepilogo amounts are rendered.
type SummaryStyle int

const (
	// SummaryFixed renders two fractional digits, as the schema requires.
	SummaryFixed SummaryStyle = iota
	// SummaryLegacy renders the shortest form with at least one fractional
	// digit ("22.0", "2.5"). Documents in this style do not pass schema
	// validation; it exists for consumers comparing against old output.
	SummaryLegacy
)

func (s SummaryStyle) String() string {
	switch s {
	case SummaryLegacy:
		return "legacy"
	default:
		return "fixed"
	}
}

// ParseSummaryStyle accepts "fixed" and "legacy". The empty string is fixed.
func ParseSummaryStyle(s string) (SummaryStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return SummaryFixed, nil
	case "legacy":
		return SummaryLegacy, nil
	}
	return SummaryFixed, fmt.Errorf("unknown summary style %q", s)
}

func (s SummaryStyle) format(d decimal.Decimal) string {
	if s == SummaryLegacy {
		out := d.String()
		if !strings.Contains(out, ".") {
			out += ".0"
		}
		return out
	}
	return formatAmount(d)
}

// maxIntegerDigits is the widest integer part any amount element accepts.
const maxIntegerDigits = 11

var hundred = decimal.NewFromInt(100)

// formatAmount always uses a period and exactly two fractional digits.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// fractionDigits is the precision of every amount and rate element. Values
// are never rounded to fit it.
const fractionDigits = 2

func checkAmount(field string, d decimal.Decimal) *FieldError {
	if !d.Equal(d.Round(fractionDigits)) {
		return malformed(field, fmt.Sprintf("more than %d fractional digits", fractionDigits))
	}
	if len(d.Abs().Truncate(0).String()) > maxIntegerDigits {
		return malformed(field, fmt.Sprintf("more than %d integer digits", maxIntegerDigits))
	}
	return nil
}

func checkRate(field string, d decimal.Decimal) *FieldError {
	if d.IsNegative() || d.GreaterThanOrEqual(hundred) {
		return malformed(field, "rate must be in [0, 100)")
	}
	if !d.Equal(d.Round(fractionDigits)) {
		return malformed(field, fmt.Sprintf("more than %d fractional digits", fractionDigits))
	}
	return nil
}

// checkLatin rejects text the schema's Latin-1 string types cannot carry.
// Control characters other than tab, LF and CR are rejected too: XML cannot
// hold them and the encoder would replace them.
func checkLatin(field, s string) *FieldError {
	for _, r := range s {
		switch {
		case r > 0xFF:
			return malformed(field, fmt.Sprintf("character %q outside Latin-1", r))
		case r < 0x20 && r != '\t' && r != '\n' && r != '\r', r >= 0x7F && r <= 0x9F:
			return malformed(field, fmt.Sprintf("control character %q", r))
		}
	}
	return nil
}
