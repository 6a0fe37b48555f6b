package entity

import "errors"

// Domain errors returned by the services. Handlers map them to HTTP
// status codes with errors.Is, anything else counts as a storage failure.
var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSeatAlreadyBooked = errors.New("seat is already booked")
)

// ValidationError carries the per-field messages collected while parsing
// a request. It signals bad input, never a fault.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError wraps a non-empty field->message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
