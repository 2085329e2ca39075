package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrNoUserID              = errors.New("no user ID was given")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrRecordNotFound is returned when a record does not exist in the
	// configured source, local or remote.
	ErrRecordNotFound = errors.New("vault record not found")

	// ErrAccessDenied is returned when the remote API rejects the identity.
	ErrAccessDenied = errors.New("access denied")

	// ErrUpstreamUnavailable is returned when the record source cannot be
	// reached or failed internally.
	ErrUpstreamUnavailable = errors.New("record source unavailable")
)
