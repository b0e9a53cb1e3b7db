package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ContactEmailTag is the validator tag for the permissive contact email shape.
const ContactEmailTag = "contactemail"

// contactEmailRegex accepts local@domain.tld without whitespace or extra '@'.
// Whitespace covers \v, every Unicode separator and the BOM, not just ASCII.
var contactEmailRegex = regexp.MustCompile(`^[^\s\x{0B}\p{Z}\x{FEFF}@]+@[^\s\x{0B}\p{Z}\x{FEFF}@]+\.[^\s\x{0B}\p{Z}\x{FEFF}@]+$`)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation(ContactEmailTag, validateContactEmail)
}

// New returns a validator with the custom validators registered.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// IsContactEmail reports whether s has the accepted email shape.
func IsContactEmail(s string) bool {
	return contactEmailRegex.MatchString(s)
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return IsContactEmail(fl.Field().String())
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError flattens validator errors into field/tag pairs
func FormatValidationError(err error) []ValidationError {
	var out []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			out = append(out, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return out
}

// HasTag reports whether any of the validation errors failed on tag.
func HasTag(errs []ValidationError, tag string) bool {
	for _, e := range errs {
		if e.Tag == tag {
			return true
		}
	}
	return false
}
