// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side envelope encryption of vault
// fields.
//
// Scheme:
//
//	key      = PBKDF2-HMAC-SHA256(userID, fixed salt, 250 000 rounds, 32 bytes)
//	iv       = 12 random bytes, fresh per call
//	envelope = {cipherText: b64(AES-GCM(key, iv, utf8(plain))), salt: b64(salt), iv: b64(iv)}
//
// The key depends only on the user identifier, so any client that knows it
// can decrypt without a key exchange. The salt is fixed and shared by all
// users; stored data depends on it and it must not change without a
// migration path.
package crypto
