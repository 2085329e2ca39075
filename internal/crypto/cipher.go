// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/secure-vault/models"
)

// cipherEngine is the private implementation of [CipherEngine].
type cipherEngine struct {
	deriver KeyDeriver
	random  io.Reader
}

// NewCipherEngine constructs a [CipherEngine] that derives keys with deriver
// and draws IVs from the OS CSPRNG.
func NewCipherEngine(deriver KeyDeriver) CipherEngine {
	return &cipherEngine{
		deriver: deriver,
		random:  rand.Reader,
	}
}

// Encrypt implements [CipherEngine].
func (c *cipherEngine) Encrypt(plainText, userID string) (models.Envelope, error) {
	if plainText == "" || userID == "" {
		return models.Envelope{}, fmt.Errorf("%w: plain text and user id are required", ErrInput)
	}

	iv := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return models.Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	key, err := c.deriver.DeriveKey(userID)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("derive key: %w", err)
	}

	sealed := key.seal(iv, UTF8Encode(plainText))

	return models.Envelope{
		CipherText: BytesToBase64(sealed),
		Salt:       BytesToBase64(fixedSalt),
		IV:         BytesToBase64(iv),
	}, nil
}

// Decrypt implements [CipherEngine].
//
// The salt is decoded to validate the envelope but is not fed into the
// derivation: every envelope written so far uses the fixed salt.
func (c *cipherEngine) Decrypt(envelope models.Envelope, userID string) (string, error) {
	if !envelope.IsComplete() || userID == "" {
		return "", fmt.Errorf("%w: complete envelope and user id are required", ErrInput)
	}

	if _, err := Base64ToBytes(envelope.Salt); err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	iv, err := Base64ToBytes(envelope.IV)
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", err)
	}
	if len(iv) != NonceSize {
		return "", fmt.Errorf("decode iv: %w: got %d bytes, want %d", ErrDecode, len(iv), NonceSize)
	}
	sealed, err := Base64ToBytes(envelope.CipherText)
	if err != nil {
		return "", fmt.Errorf("decode cipher text: %w", err)
	}

	key, err := c.deriver.DeriveKey(userID)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	plain, err := key.open(iv, sealed)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", ErrAuthentication)
	}

	decoded := UTF8Decode(plain)
	if decoded == "" {
		return "", ErrEmptyResult
	}

	return decoded, nil
}
