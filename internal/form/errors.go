package form

import (
	"errors"
	"fmt"
	"strings"
)

// MissingFieldsMessage is shown when required fields are empty
const MissingFieldsMessage = "Please fill in all the required fields including day selection before calculating."

var (
	// ErrMissingRequiredField is wrapped by *MissingFieldsError
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidField is wrapped by *FieldError
	ErrInvalidField = errors.New("invalid field")
)

// MissingFieldsError lists the required fields that were left empty
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingRequiredField
}

// FieldError reports a value outside the accepted range or set
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidField, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// UserMessage returns the text to show next to the form
func UserMessage(err error) string {
	var missing *MissingFieldsError
	if errors.As(err, &missing) {
		return MissingFieldsMessage
	}
	var field *FieldError
	if errors.As(err, &field) {
		return fmt.Sprintf("Invalid %s: %s", strings.ReplaceAll(field.Field, "_", " "), field.Reason)
	}
	return err.Error()
}
