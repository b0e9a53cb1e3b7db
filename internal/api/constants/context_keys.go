package constants

// Context keys set by middleware
const (
	ContextKeyRequestID = "RequestID"
)

// HeaderRequestID carries the request ID in both directions
const HeaderRequestID = "X-Request-ID"
