// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// BytesToBase64 encodes b as standard padded Base64.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes standard padded Base64 in strict mode, so non-zero
// trailing padding bits are rejected. Empty input and any alphabet or padding
// violation are reported as [ErrDecode].
func Base64ToBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return b, nil
}

// UTF8Encode returns the UTF-8 bytes of s.
func UTF8Encode(s string) []byte {
	return []byte(s)
}

// UTF8Decode converts b to a string. Invalid sequences are replaced with
// U+FFFD so that garbage never passes as valid text silently.
func UTF8Decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
