package contact

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrMissingFields  = errors.New("missing required fields")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrNotConfigured  = errors.New("email service not configured")
	ErrDeliveryFailed = errors.New("failed to send email")
)

// OutcomeFor maps a pipeline error to its outcome. Errors that are not one of
// the sentinels above fall back to InvalidRequest.
func OutcomeFor(err error) Outcome {
	switch {
	case err == nil:
		return Sent
	case errors.Is(err, ErrMissingFields):
		return MissingFields
	case errors.Is(err, ErrInvalidEmail):
		return InvalidEmail
	case errors.Is(err, ErrNotConfigured):
		return NotConfigured
	case errors.Is(err, ErrDeliveryFailed):
		return DeliveryFailed
	default:
		return InvalidRequest
	}
}
