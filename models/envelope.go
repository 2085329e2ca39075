// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the persisted representation of one encrypted vault field.
// All three values are standard Base64 text. The JSON keys are part of the
// storage contract and must not change.
type Envelope struct {
	// CipherText is the AES-GCM ciphertext with the authentication tag appended.
	CipherText string `json:"cipherText"`

	// Salt is the key-derivation salt. It is a fixed application-wide value
	// today but travels with every envelope so it can change later.
	Salt string `json:"salt"`

	// IV is the 12-byte GCM nonce, unique per encryption.
	IV string `json:"iv"`
}

// IsComplete reports whether every envelope field is present.
func (e Envelope) IsComplete() bool {
	return e.CipherText != "" && e.Salt != "" && e.IV != ""
}
