package fatturapa

import (
	"errors"
	"fmt"
)

var (
	// ErrDataCompleteness is returned when a required identity, address or
	// line field is missing at assembly time.
	ErrDataCompleteness = errors.New("incomplete invoice data")

	// ErrFormat is returned when a value cannot be rendered with the fixed
	// numeric or text rules of the format.
	ErrFormat = errors.New("value cannot be formatted")

	// ErrSchemaViolation is returned when a document fails structural
	// validation against the schema.
	ErrSchemaViolation = errors.New("document violates schema")
)

// FieldError identifies the offending field of an invoice.
type FieldError struct {
	// Field is the Go path of the field, e.g. "Recipient.Address.City".
	Field string

	// Line is the 1-based line number for line fields, 0 otherwise.
	Line int

	Message string
	Err     error
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("fatturapa: line %d: %s: %s: %v", e.Line, e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("fatturapa: %s: %s: %v", e.Field, e.Message, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(field string) *FieldError {
	return &FieldError{Field: field, Message: "required", Err: ErrDataCompleteness}
}

func malformed(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message, Err: ErrFormat}
}

func atLine(line int, err *FieldError) *FieldError {
	err.Line = line
	return err
}
