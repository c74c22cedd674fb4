package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid field, suitable for field-level display.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field-level problems found in a resume payload.
// It is recoverable: callers surface the messages and continue.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid resume data:")
	for _, f := range e.Fields {
		sb.WriteString(fmt.Sprintf(" %s (%s);", f.Field, f.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Validate checks the contact fields of the payload. Entry lists are not
// validated; partially filled entries are legitimate working state.
func (d *ResumeData) Validate() error {
	validate := validator.New()
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg := fmt.Sprintf("failed %q check", fe.Tag())
		switch fe.Tag() {
		case "email":
			msg = "must be a valid email address"
		case "url":
			msg = "must be a valid URL"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
