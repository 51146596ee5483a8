// Package validate checks FatturaPA documents against an XSD schema using
// libxml2.
//
// The bundled schema covers the elements the fatturapa package writes. Use
// NewFromFile to validate against the official Schema_VFPR12.xsd instead.
package validate

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	xsdvalidate "github.com/terminalstatic/go-xsd-validate"

	"github.com/verscheures/fatturapa"
)

//go:embed schema/fatturapa_v1.2.xsd
var bundledSchema []byte

var (
	initOnce sync.Once
	initErr  error
)

func initLibxml() error {
	initOnce.Do(func() {
		initErr = xsdvalidate.Init()
	})
	return initErr
}

// Validator holds a parsed schema. It must be released with Free.
type Validator struct {
	handler *xsdvalidate.XsdHandler
}

// New returns a validator for the bundled schema.
func New() (*Validator, error) {
	if err := initLibxml(); err != nil {
		return nil, fmt.Errorf("libxml2 init: %w", err)
	}
	handler, err := xsdvalidate.NewXsdHandlerMem(bundledSchema, xsdvalidate.ParsErrDefault)
	if err != nil {
		return nil, fmt.Errorf("load bundled schema: %w", err)
	}
	return &Validator{handler: handler}, nil
}

// NewFromFile returns a validator for the schema at path. Imports in the
// schema are resolved relative to it.
func NewFromFile(path string) (*Validator, error) {
	if err := initLibxml(); err != nil {
		return nil, fmt.Errorf("libxml2 init: %w", err)
	}
	handler, err := xsdvalidate.NewXsdHandlerUrl(path, xsdvalidate.ParsErrDefault)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", path, err)
	}
	return &Validator{handler: handler}, nil
}

func (v *Validator) Free() {
	if v != nil && v.handler != nil {
		v.handler.Free()
		v.handler = nil
	}
}

// Validate validates the document stored in filename.
func (v *Validator) Validate(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return v.ValidateBytes(data)
}

// ValidateBytes returns nil for a valid document. Any other outcome wraps
// fatturapa.ErrSchemaViolation.
func (v *Validator) ValidateBytes(data []byte) error {
	err := v.handler.ValidateMem(data, xsdvalidate.ValidErrDefault)
	if err == nil {
		return nil
	}

	var verr xsdvalidate.ValidationError
	if errors.As(err, &verr) {
		messages := make([]string, 0, len(verr.Errors))
		for _, e := range verr.Errors {
			messages = append(messages, strings.TrimSpace(e.Message))
		}
		return &SchemaError{Messages: messages}
	}
	return &SchemaError{Messages: []string{strings.TrimSpace(err.Error())}}
}

// SchemaError lists the messages reported by libxml2.
type SchemaError struct {
	Messages []string
}

func (e *SchemaError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *SchemaError) Unwrap() error {
	return fatturapa.ErrSchemaViolation
}
