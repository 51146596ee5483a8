package source_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verscheures/fatturapa"
	"github.com/verscheures/fatturapa/internal/source"
)

func TestLoadYAML(t *testing.T) {
	inv, err := source.Load("testdata/invoice.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Python Italia APS", inv.Sender.Denomination)
	assert.Equal(t, "ABCDEFG", inv.Sender.TransmitterCode)
	assert.Equal(t, "RF01", inv.Sender.TaxRegime)
	assert.Equal(t, "50013", inv.Sender.Address.Postcode)
	assert.Equal(t, "Patrick", inv.Recipient.FirstName)
	assert.Equal(t, time.Date(2019, 6, 16, 0, 0, 0, 0, time.UTC), inv.Date)
	assert.Equal(t, time.Date(2019, 7, 16, 0, 0, 0, 0, time.UTC), inv.PaymentDue)
	assert.Equal(t, fatturapa.MethodBankTransfer, inv.PaymentMethod)
	assert.Equal(t, strings.Repeat("A", 200)+strings.Repeat("B", 200), inv.Reason)
	assert.Nil(t, inv.Summary)

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "1.00", inv.Lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "4.00", inv.Lines[1].Total().StringFixed(2))
	assert.True(t, inv.Lines[1].TotalPrice.IsZero())

	assert.Equal(t, "ITABCDEFG_00001A.xml", inv.Filename())
	_, err = inv.Generate()
	assert.NoError(t, err)
}

func TestLoadJSON(t *testing.T) {
	inv, err := source.Load("testdata/invoice.json")
	require.NoError(t, err)

	assert.Equal(t, "Beta S.p.A.", inv.Recipient.Denomination)
	require.Len(t, inv.Summary, 1)
	assert.Equal(t, "176.00", inv.Summary[0].TaxAmount.StringFixed(2))

	doc, err := inv.Document()
	require.NoError(t, err)
	assert.Equal(t, "976.00", doc.Body.General.Document.Total)
	assert.Equal(t, "IT01234567890_00007.xml", inv.Filename())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format bool
	}{
		{"empty", "", false},
		{"unknown key", "numbr: 1\n", false},
		{"bad decimal", "lines:\n  - quantity: one\n", true},
		{"bad date", "date: 16/06/2019\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := source.Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.format, errors.Is(err, fatturapa.ErrFormat), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := source.Load("testdata/missing.yaml")
	assert.Error(t, err)
}
