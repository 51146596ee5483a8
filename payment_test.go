package fatturapa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verscheures/fatturapa"
)

func TestPaymentMethods(t *testing.T) {
	methods := fatturapa.PaymentMethods()
	require.Len(t, methods, 22)
	assert.Equal(t, fatturapa.PaymentMethod("MP01"), methods[0])
	assert.Equal(t, fatturapa.PaymentMethod("MP22"), methods[21])

	seen := make(map[fatturapa.PaymentMethod]bool)
	for _, m := range methods {
		assert.True(t, m.Valid(), m)
		assert.NotEmpty(t, m.Label(), m)
		assert.False(t, seen[m], "duplicate %s", m)
		seen[m] = true
	}

	assert.Equal(t, fatturapa.MethodCash, fatturapa.DefaultPaymentMethod)
	assert.Equal(t, "contanti", fatturapa.MethodCash.Label())
	assert.Equal(t, "bonifico", fatturapa.MethodBankTransfer.Label())
	assert.Equal(t, "Trattenuta su somme già riscosse", fatturapa.MethodWithholding.Label())
}

func TestPaymentMethodUnknown(t *testing.T) {
	assert.False(t, fatturapa.PaymentMethod("MP23").Valid())
	assert.Empty(t, fatturapa.PaymentMethod("").Label())
}

func TestPaymentCondition(t *testing.T) {
	assert.True(t, fatturapa.ConditionFull.Valid())
	assert.True(t, fatturapa.ConditionAdvance.Valid())
	assert.False(t, fatturapa.PaymentCondition("TP04").Valid())
	assert.Equal(t, fatturapa.ConditionFull, fatturapa.DefaultPaymentCondition)
}
