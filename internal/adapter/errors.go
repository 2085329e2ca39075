package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes of the vault API.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("record conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnavailable wraps transport failures (refused connection, timeout)
	// where no HTTP response was received.
	ErrUnavailable = errors.New("vault api unavailable")

	ErrEmptyAddress = errors.New("empty address")
)
