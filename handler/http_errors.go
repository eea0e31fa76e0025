package handler

import "net/http"

// HTTPError represents an HTTP error with status code and a machine-readable key.
// Message is the optional human-readable text sent to the client; when empty,
// the standard status text is used. A wrapped cause is kept for logging and
// errors.Is/As but never sent to the client.
type HTTPError struct {
	Code    int    // HTTP status code
	Key     string // Stable error code (e.g., "not_found", "session_not_found")
	Message string

	cause error
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	if e.cause != nil {
		return e.Key + ": " + e.cause.Error()
	}
	return e.Key
}

// Unwrap returns the wrapped cause.
func (e HTTPError) Unwrap() error {
	return e.cause
}

// Is matches another HTTPError with the same code and key, ignoring the
// message and cause.
func (e HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	return ok && t.Code == e.Code && t.Key == e.Key
}

// WithKey returns a copy with a more specific key.
func (e HTTPError) WithKey(key string) HTTPError {
	e.Key = key
	return e
}

// WithMessage returns a copy with a client-facing message.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

// Wrap returns a copy carrying err as its cause.
func (e HTTPError) Wrap(err error) HTTPError {
	e.cause = err
	return e
}

// Text returns Message or, when empty, the standard status text.
func (e HTTPError) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Code)
}

// 4xx Client Errors
var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized         = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden            = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrConflict             = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
)

// 5xx Server Errors
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrNotImplemented      = HTTPError{Code: http.StatusNotImplemented, Key: "not_implemented"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// NewHTTPError creates a custom HTTP error with the given status code and key.
//
// Example:
//
//	err := handler.NewHTTPError(http.StatusForbidden, "token_required")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
