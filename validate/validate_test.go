package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verscheures/fatturapa"
	"github.com/verscheures/fatturapa/validate"
)

func TestValidate(t *testing.T) {
	v, err := validate.New()
	require.NoError(t, err)
	defer v.Free()

	err = v.Validate("testdata/invoice_base_correct.xml")
	assert.NoError(t, err)

	err = v.Validate("testdata/invoice_syntax_error.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Malformed xml document")
	assert.True(t, errors.Is(err, fatturapa.ErrSchemaViolation))

	err = v.Validate("testdata/invoice_missing_element.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "This element is not expected")

	var schemaErr *validate.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.NotEmpty(t, schemaErr.Messages)
}

func TestValidateMissingFile(t *testing.T) {
	v, err := validate.New()
	require.NoError(t, err)
	defer v.Free()

	err = v.Validate("testdata/does_not_exist.xml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, fatturapa.ErrSchemaViolation))
}

func TestNewFromFile(t *testing.T) {
	v, err := validate.NewFromFile("schema/fatturapa_v1.2.xsd")
	require.NoError(t, err)
	defer v.Free()

	assert.NoError(t, v.Validate("testdata/invoice_base_correct.xml"))
}

func TestFreeTwice(t *testing.T) {
	v, err := validate.New()
	require.NoError(t, err)
	v.Free()
	v.Free()
}
