package lastfm

import (
	"fmt"
)

// Error represents a Last.fm API error.
//
// The Error type carries the error code and message from the service's
// failed-response envelope. The client never retries on its own; the
// Temporary method tells callers whether a retry of their own is
// worthwhile.
type Error struct {
	Code    int    // Last.fm error code
	Message string // Error message from Last.fm
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("lastfm: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is a Last.fm error with the same code.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Temporary returns true if the error is temporary and the caller may
// want to retry the request.
//
// The following Last.fm error codes are considered temporary:
//   - 11: Service Offline - temporarily unavailable
//   - 16: Service Temporarily Unavailable
func (e *Error) Temporary() bool {
	switch e.Code {
	case ErrCodeServiceOffline, ErrCodeTempUnavailable:
		return true
	default:
		return false
	}
}

// TransportError wraps a failure that occurred before a well-formed
// service response was obtained: network errors, unexpected HTTP
// status codes, and unparseable bodies.
//
// It is deliberately distinct from *Error so callers can tell "the
// service said no" apart from "the service was never reached" and pick
// their own retry policy.
type TransportError struct {
	Op  string // What was being attempted, e.g. "auth.getToken"
	Err error  // Underlying cause
}

// Error returns the error message.
func (e *TransportError) Error() string {
	return fmt.Sprintf("lastfm: %s: transport: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an extraction miss: the response document held
// fewer elements with the requested name than the caller asked for.
// It usually means the service contract drifted or the response was
// malformed; it is never converted to an empty default.
type NotFoundError struct {
	Name  string // Element name looked up
	Index int    // Index requested among same-named elements
	Count int    // How many such elements the document actually held
}

// Error returns the error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lastfm: element %q index %d not found (document has %d)", e.Name, e.Index, e.Count)
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService       = 2
	ErrCodeInvalidMethod        = 3
	ErrCodeAuthenticationFailed = 4
	ErrCodeInvalidFormat        = 5
	ErrCodeInvalidParameters    = 6
	ErrCodeInvalidResourceSpec  = 7
	ErrCodeOperationFailed      = 8
	ErrCodeInvalidSessionKey    = 9
	ErrCodeInvalidAPIKey        = 10
	ErrCodeServiceOffline       = 11
	ErrCodeSubscribersOnly      = 12
	ErrCodeInvalidSignature     = 13
	ErrCodeUnauthorizedToken    = 14
	ErrCodeExpiredToken         = 15
	ErrCodeTempUnavailable      = 16
	ErrCodeRateLimitExceeded    = 29
)

// Predefined errors for common cases.
var (
	// ErrInvalidCredentials is returned when a client or session is
	// constructed with an empty API key or secret. No network call is
	// attempted.
	ErrInvalidCredentials = fmt.Errorf("lastfm: API key and secret are required")

	// ErrNoSessionKey is returned when an operation requires
	// authentication but no session key has been set.
	ErrNoSessionKey = fmt.Errorf("lastfm: session key required")

	// ErrNoPendingToken is returned when CompleteWebAuth is called
	// before WebAuthURL has produced a pending token.
	ErrNoPendingToken = fmt.Errorf("lastfm: no pending auth token; call WebAuthURL first")
)
