package contact

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kirusanth290/portfolio/internal/validation"
)

// Submission is one contact form payload. It only lives for a single request.
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contactemail"`
	Message string `json:"message" validate:"required"`
}

var validate *validator.Validate = validation.New()

// ParseSubmission decodes a JSON body. Anything that is not a JSON object
// with string fields fails with ErrInvalidRequest.
func ParseSubmission(raw []byte) (Submission, error) {
	var sub Submission

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return sub, ErrInvalidRequest
	}

	// Keys match exactly; encoding/json would fold case on a struct
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return sub, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &sub.Name},
		{"email", &sub.Email},
		{"message", &sub.Message},
	} {
		value, ok := fields[f.key]
		if !ok {
			continue
		}
		// null leaves the field empty
		if err := json.Unmarshal(value, f.dst); err != nil {
			return sub, fmt.Errorf("%w: field %q: %v", ErrInvalidRequest, f.key, err)
		}
	}

	return sub, nil
}

// Validate checks required fields first and the email shape second, so a
// submission missing its name never reports an email error.
func (s Submission) Validate() error {
	errs := validation.FormatValidationError(validate.Struct(s))
	switch {
	case len(errs) == 0:
		return nil
	case validation.HasTag(errs, "required"):
		return ErrMissingFields
	case validation.HasTag(errs, validation.ContactEmailTag):
		return ErrInvalidEmail
	default:
		return ErrInvalidRequest
	}
}
