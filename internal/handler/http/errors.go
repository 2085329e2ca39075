// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoIdentity is returned by the identity middleware when neither the
	// X-User-ID header nor a usable bearer token is present.
	ErrNoIdentity = errors.New("no user identity in request")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
