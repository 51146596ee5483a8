package fatturapa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verscheures/fatturapa"
)

func TestAddressString(t *testing.T) {
	tests := []struct {
		name    string
		address fatturapa.Address
		want    string
	}{
		{
			name: "full",
			address: fatturapa.Address{
				Street:      "Via dei matti, 0",
				Postcode:    "12345",
				City:        "Agrigento",
				Province:    "AG",
				CountryCode: "IT",
			},
			want: "Via dei matti, 0 Agrigento (AG) [IT]",
		},
		{
			name:    "street only",
			address: fatturapa.Address{Street: "Via Dante Alighieri, 4", CountryCode: "IT"},
			want:    "Via Dante Alighieri, 4 [IT]",
		},
		{
			name:    "no postcode",
			address: fatturapa.Address{Street: "Via Roma, 9", City: "Treviglio", Province: "BG", CountryCode: "IT"},
			want:    "Via Roma, 9 Treviglio (BG) [IT]",
		},
		{
			name:    "city without province",
			address: fatturapa.Address{Street: "Via Roma, 9", City: "Treviglio", CountryCode: "IT"},
			want:    "Via Roma, 9 [IT]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.address.String())
		})
	}
}
