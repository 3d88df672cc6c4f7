package response

import "net/http"

// ErrCode is a typed error code for consistent API error identification.
// Codes mirror HTTP statuses because the envelope exposes them to clients.
type ErrCode int

const (
	ErrBadRequest      ErrCode = http.StatusBadRequest
	ErrNotFound        ErrCode = http.StatusNotFound
	ErrUnprocessable   ErrCode = http.StatusUnprocessableEntity
	ErrTooManyRequests ErrCode = http.StatusTooManyRequests
	ErrInternal        ErrCode = http.StatusInternalServerError
)

// Message returns the fixed human-readable message for a given error code.
// Messages are per-kind, never per-instance, so no internal detail leaks.
func Message(code ErrCode) string {
	switch code {
	case ErrBadRequest:
		return "bad request"
	case ErrNotFound:
		return "resource not found"
	case ErrUnprocessable:
		return "unprocessable request"
	case ErrTooManyRequests:
		return "too many requests"
	case ErrInternal:
		return "internal server error"
	default:
		return "unexpected error"
	}
}
