package contact

import "net/http"

// Outcome is the result of one submission. Every value maps to exactly one
// HTTP status and one wire message.
type Outcome int

const (
	Sent Outcome = iota
	InvalidRequest
	MissingFields
	InvalidEmail
	NotConfigured
	DeliveryFailed
)

var outcomeStatus = map[Outcome]int{
	Sent:           http.StatusOK,
	InvalidRequest: http.StatusBadRequest,
	MissingFields:  http.StatusBadRequest,
	InvalidEmail:   http.StatusBadRequest,
	NotConfigured:  http.StatusInternalServerError,
	DeliveryFailed: http.StatusInternalServerError,
}

var outcomeMessage = map[Outcome]string{
	Sent:           "Message sent successfully",
	InvalidRequest: "Invalid request",
	MissingFields:  "Missing required fields",
	InvalidEmail:   "Invalid email address",
	NotConfigured:  "Email service not configured",
	DeliveryFailed: "Failed to send email",
}

var outcomeName = map[Outcome]string{
	Sent:           "sent",
	InvalidRequest: "invalid_request",
	MissingFields:  "missing_fields",
	InvalidEmail:   "invalid_email",
	NotConfigured:  "not_configured",
	DeliveryFailed: "delivery_failed",
}

// OK reports whether the email went out.
func (o Outcome) OK() bool {
	return o == Sent
}

// Status returns the HTTP status code for the outcome. Unknown values are
// treated as a malformed request.
func (o Outcome) Status() int {
	if s, ok := outcomeStatus[o]; ok {
		return s
	}
	return http.StatusBadRequest
}

// Message returns the text sent to the caller.
func (o Outcome) Message() string {
	if m, ok := outcomeMessage[o]; ok {
		return m
	}
	return outcomeMessage[InvalidRequest]
}

func (o Outcome) String() string {
	if n, ok := outcomeName[o]; ok {
		return n
	}
	return "unknown"
}
