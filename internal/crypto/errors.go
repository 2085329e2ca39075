// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the codec, key deriver and cipher engine.
// They are always wrapped with context; match them with [errors.Is].
var (
	// ErrInput is returned when a required argument (plain text, user ID or
	// an envelope field) is missing or empty. Retrying is pointless.
	ErrInput = errors.New("invalid input")

	// ErrDecode is returned when a stored field is not valid Base64.
	ErrDecode = errors.New("base64 decode failed")

	// ErrDerivation is returned when a key cannot be derived, e.g. for an
	// empty user ID.
	ErrDerivation = errors.New("key derivation failed")

	// ErrAuthentication is returned when the GCM tag does not verify: wrong
	// key, or corrupted, tampered or foreign ciphertext.
	ErrAuthentication = errors.New("wrong key or corrupted/tampered ciphertext")

	// ErrEmptyResult is returned when decryption succeeds but yields no text.
	// Callers treat it like [ErrAuthentication].
	ErrEmptyResult = errors.New("decryption resulted in empty data")
)

// IsUndecryptable reports whether err means that the stored value cannot be
// turned back into plaintext with the given identity.
func IsUndecryptable(err error) bool {
	return errors.Is(err, ErrAuthentication) ||
		errors.Is(err, ErrEmptyResult) ||
		errors.Is(err, ErrDecode)
}
