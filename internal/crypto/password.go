// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/secure-vault/models"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 64

	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	symbolChars  = "!@#$%^&*()-_=+[]{};:,.<>/?"
	lookAlikeSet = "l1IO0o"
)

type passwordGenerator struct{}

// NewPasswordGenerator constructs a [PasswordGenerator] backed by crypto/rand.
func NewPasswordGenerator() PasswordGenerator {
	return passwordGenerator{}
}

// Generate implements [PasswordGenerator]. A zero length selects the
// default of 16; other lengths must lie in [MinPasswordLength, MaxPasswordLength].
func (passwordGenerator) Generate(opts models.GeneratorOptions) (string, error) {
	length := opts.Length
	if length == 0 {
		length = models.DefaultGeneratorOptions().Length
	}
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: length must be between %d and %d", ErrInput, MinPasswordLength, MaxPasswordLength)
	}

	charset := buildCharset(opts)
	if charset == "" {
		return "", fmt.Errorf("%w: no character classes selected", ErrInput)
	}

	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, length)
	for i := range out {
		// rand.Int is uniform over [0, limit), no modulo bias.
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		out[i] = charset[n.Int64()]
	}

	return string(out), nil
}

func buildCharset(opts models.GeneratorOptions) string {
	var sb strings.Builder
	if opts.Lower {
		sb.WriteString(lowerChars)
	}
	if opts.Upper {
		sb.WriteString(upperChars)
	}
	if opts.Numbers {
		sb.WriteString(numberChars)
	}
	if opts.Symbols {
		sb.WriteString(symbolChars)
	}

	charset := sb.String()
	if opts.ExcludeLookAlike {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(lookAlikeSet, r) {
				return -1
			}
			return r
		}, charset)
	}
	return charset
}
