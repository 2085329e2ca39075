// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultRecord is a vault item exactly as it is stored. Username and Password
// hold either a JSON-encoded [Envelope], a double-encoded envelope or a legacy
// plaintext string.
type VaultRecord struct {
	// ID is the record identifier assigned on creation.
	ID string `json:"_id"`

	// UserID is the stable identifier of the owner. It is also the input of
	// the key derivation.
	UserID string `json:"userId"`

	// Title is the human-readable name of the item. Stored in clear.
	Title string `json:"title"`

	// Username is the stored form of the login name.
	Username string `json:"username"`

	// Password is the stored form of the secret.
	Password string `json:"password"`

	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// VaultEntry is the decrypted view of a [VaultRecord] prepared for display.
type VaultEntry struct {
	ID        string     `json:"_id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	URL       string     `json:"url,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// EncryptedUsername and EncryptedPassword hold the stored values exactly
	// as they were read. Saving always re-encrypts from plaintext.
	EncryptedUsername string `json:"encryptedUsername"`
	EncryptedPassword string `json:"encryptedPassword"`

	// IsLegacy is set when at least one sensitive field could not be read as
	// a current envelope. The user should re-save the entry.
	IsLegacy bool `json:"isLegacy"`
}

// VaultForm carries plaintext values entered by the user. An empty ID means
// a new record.
type VaultForm struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ReconciledField is the display value of one stored secret field.
type ReconciledField struct {
	Value    string `json:"value"`
	IsLegacy bool   `json:"isLegacy"`
}
