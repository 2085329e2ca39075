// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/MKhiriev/secure-vault/models"
)

// LegacyMaxLength is the length, in UTF-16 code units, below which a
// non-envelope value that does not look like JSON is taken to be legacy
// plaintext. Code units match how the values were measured when written.
const LegacyMaxLength = 50

// Kind is the outcome of classifying a stored field.
type Kind int

const (
	// KindPlain is a legacy plaintext value (or an empty field).
	KindPlain Kind = iota
	// KindStructured is an encrypted envelope.
	KindStructured
	// KindUnrecognized is neither a usable envelope nor short plaintext.
	KindUnrecognized
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindStructured:
		return "structured"
	case KindUnrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classification is the result of [Classify]. Envelope is set only when
// Kind is KindStructured; Raw always holds the input.
type Classification struct {
	Kind     Kind
	Envelope models.Envelope
	Raw      string
}

// Sniffer classifies stored field values.
type Sniffer interface {
	Classify(raw string) Classification
}

// HeuristicSniffer is the [Sniffer] used for all data written so far.
type HeuristicSniffer struct{}

// NewSniffer returns the default [Sniffer].
func NewSniffer() Sniffer {
	return HeuristicSniffer{}
}

// Classify implements [Sniffer].
func (HeuristicSniffer) Classify(raw string) Classification {
	return Classify(raw)
}

// Classify inspects raw and never fails.
//
// Order: JSON parse, at most one unwrap of a JSON string that itself holds
// an object, envelope shape check, then the length/brace heuristic for
// everything else.
func Classify(raw string) Classification {
	if raw == "" {
		return Classification{Kind: KindPlain, Raw: raw}
	}

	if env, ok := parseEnvelope(raw); ok {
		return Classification{Kind: KindStructured, Envelope: env, Raw: raw}
	}

	if utf16Len(raw) < LegacyMaxLength &&
		!strings.HasPrefix(raw, "{") && !strings.HasPrefix(raw, `"{`) {
		return Classification{Kind: KindPlain, Raw: raw}
	}

	return Classification{Kind: KindUnrecognized, Raw: raw}
}

func parseEnvelope(raw string) (models.Envelope, bool) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return models.Envelope{}, false
	}

	// One level only.
	if s, ok := v.(string); ok {
		if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
			return models.Envelope{}, false
		}
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return models.Envelope{}, false
		}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return models.Envelope{}, false
	}

	env := models.Envelope{
		CipherText: stringField(obj, "cipherText"),
		Salt:       stringField(obj, "salt"),
		IV:         stringField(obj, "iv"),
	}
	return env, env.IsComplete()
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// Encode serialises env into the stored field format: a JSON object with
// exactly the keys cipherText, salt and iv.
func Encode(env models.Envelope) (string, error) {
	if !env.IsComplete() {
		return "", ErrIncompleteEnvelope
	}

	b, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(b), nil
}

// utf16Len counts UTF-16 code units, so characters outside the BMP count twice.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
