// Package apperr defines the error taxonomy used across the service and
// the single place where errors map to HTTP status codes. Handlers return
// *Error values; everything else wraps with fmt.Errorf and gets classified
// as internal at the boundary.
package apperr

import "net/http"

// Kind tags an error with its transport-level meaning.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
)

// Error is a classified application error. Message is what the client
// sees; Err (optional) is the underlying cause, kept for logging.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Validation returns a 400-class error with the given client message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Unauthorized returns a 401-class error. The message is intentionally
// generic so credential failures are indistinguishable from each other.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound returns a 404-class error with an entity-specific message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure. The underlying error's text is
// surfaced to the client, which is acceptable for an internal tool.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}

// Status maps an error kind to its HTTP status code.
func Status(e *Error) int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
