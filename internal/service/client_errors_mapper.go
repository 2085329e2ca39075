// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/store"
	"github.com/MKhiriev/secure-vault/internal/validators"
)

// mapSourceError translates adapter and store errors into service errors.
// The original error stays in the chain.
func mapSourceError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, store.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, store.ErrRecordAlreadyExists):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return err
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrNoUserID):
		return app.MsgNoUserIDProvided

	case errors.Is(err, validators.ErrEmptyTitle),
		errors.Is(err, validators.ErrTitleTooLong),
		errors.Is(err, validators.ErrEmptyUsername),
		errors.Is(err, validators.ErrEmptyPassword),
		errors.Is(err, validators.ErrInvalidURL),
		errors.Is(err, validators.ErrPlaceholderSave):
		return unwrapValidation(err)

	case errors.Is(err, crypto.ErrDecode):
		return app.MsgMalformedEnvelope
	case errors.Is(err, crypto.ErrAuthentication), errors.Is(err, crypto.ErrEmptyResult):
		return app.MsgCannotDecrypt
	case errors.Is(err, crypto.ErrInput), errors.Is(err, crypto.ErrDerivation),
		errors.Is(err, ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided

	case errors.Is(err, ErrRecordNotFound):
		return app.MsgDataNotFound
	case errors.Is(err, ErrAccessDenied):
		return app.MsgAccessDenied
	case errors.Is(err, ErrUpstreamUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return app.MsgUpstreamUnavailable
	case errors.Is(err, ErrVersionIsNotSpecified):
		return app.MsgVersionIsNotSpecified
	}

	return app.MsgInternalServerError
}

// unwrapValidation returns the innermost validator message, e.g. "title is
// required".
func unwrapValidation(err error) string {
	for _, target := range []error{
		validators.ErrEmptyTitle,
		validators.ErrTitleTooLong,
		validators.ErrEmptyUsername,
		validators.ErrEmptyPassword,
		validators.ErrInvalidURL,
		validators.ErrPlaceholderSave,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return app.MsgInvalidDataProvided
}
