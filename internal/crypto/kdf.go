// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used for every stored
	// envelope. Changing it makes existing data unreadable.
	DefaultIterations = 250_000

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12
)

// fixedSalt is shared by all users. It is not secret. Existing envelopes
// depend on this exact value.
var fixedSalt = []byte("vault-app-salt-2025")

// FixedSalt returns a copy of the application-wide derivation salt.
func FixedSalt() []byte {
	return append([]byte(nil), fixedSalt...)
}

// SymmetricKey is a derived AES-256-GCM key. The raw key bytes are not
// reachable through it; it can only seal and open.
type SymmetricKey struct {
	aead cipher.AEAD
}

func newSymmetricKey(raw []byte) (*SymmetricKey, error) {
	defer clear(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &SymmetricKey{aead: gcm}, nil
}

func (k *SymmetricKey) seal(nonce, plaintext []byte) []byte {
	return k.aead.Seal(nil, nonce, plaintext, nil)
}

func (k *SymmetricKey) open(nonce, ciphertext []byte) ([]byte, error) {
	return k.aead.Open(nil, nonce, ciphertext, nil)
}

// pbkdf2KeyDeriver is the private implementation of [KeyDeriver].
type pbkdf2KeyDeriver struct {
	// Kept on the struct so tests can lower the work factor.
	iterations int
	salt       []byte
}

// NewKeyDeriver constructs a [KeyDeriver] using PBKDF2-HMAC-SHA256 with
// [DefaultIterations] rounds and the fixed application salt.
func NewKeyDeriver() KeyDeriver {
	return &pbkdf2KeyDeriver{
		iterations: DefaultIterations,
		salt:       fixedSalt,
	}
}

// DeriveKey implements [KeyDeriver]. Identical user IDs always produce the
// same key.
func (d *pbkdf2KeyDeriver) DeriveKey(userID string) (*SymmetricKey, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrDerivation)
	}

	raw := pbkdf2.Key(UTF8Encode(userID), d.salt, d.iterations, KeySize, sha256.New)
	key, err := newSymmetricKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivation, err)
	}

	return key, nil
}
