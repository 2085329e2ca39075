package envelope

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-vault/models"
)

func TestClassify(t *testing.T) {
	abc := models.Envelope{CipherText: "a", Salt: "b", IV: "c"}

	tests := []struct {
		name     string
		raw      string
		wantKind Kind
		wantEnv  models.Envelope
	}{
		{
			name:     "envelope object",
			raw:      `{"cipherText":"a","salt":"b","iv":"c"}`,
			wantKind: KindStructured,
			wantEnv:  abc,
		},
		{
			name:     "double encoded envelope",
			raw:      `"{\"cipherText\":\"a\",\"salt\":\"b\",\"iv\":\"c\"}"`,
			wantKind: KindStructured,
			wantEnv:  abc,
		},
		{
			name:     "envelope with extra keys",
			raw:      `{"cipherText":"a","salt":"b","iv":"c","v":1}`,
			wantKind: KindStructured,
			wantEnv:  abc,
		},
		{
			name:     "legacy plaintext",
			raw:      "myOldPlainPassword",
			wantKind: KindPlain,
		},
		{
			name:     "empty",
			raw:      "",
			wantKind: KindPlain,
		},
		{
			name:     "json number",
			raw:      "123456",
			wantKind: KindPlain,
		},
		{
			name:     "json null",
			raw:      "null",
			wantKind: KindPlain,
		},
		{
			name:     "quoted short string",
			raw:      `"hello"`,
			wantKind: KindPlain,
		},
		{
			name:     "49 characters",
			raw:      strings.Repeat("p", 49),
			wantKind: KindPlain,
		},
		{
			name:     "50 characters",
			raw:      strings.Repeat("p", 50),
			wantKind: KindUnrecognized,
		},
		{
			name:     "60 character plaintext",
			raw:      strings.Repeat("correct horse ", 5),
			wantKind: KindUnrecognized,
		},
		{
			name:     "multibyte under threshold",
			raw:      strings.Repeat("ж", 40),
			wantKind: KindPlain,
		},
		{
			name:     "24 emoji are 48 code units",
			raw:      strings.Repeat("🔑", 24),
			wantKind: KindPlain,
		},
		{
			name:     "25 emoji are 50 code units",
			raw:      strings.Repeat("🔑", 25),
			wantKind: KindUnrecognized,
		},
		{
			name:     "49 code units with one emoji",
			raw:      "🔑" + strings.Repeat("p", 47),
			wantKind: KindPlain,
		},
		{
			name:     "broken json object",
			raw:      `{not json`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "object missing iv",
			raw:      `{"cipherText":"a","salt":"b"}`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "object with empty field",
			raw:      `{"cipherText":"","salt":"b","iv":"c"}`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "object with non-string field",
			raw:      `{"cipherText":1,"salt":"b","iv":"c"}`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "quoted broken object",
			raw:      `"{oops}"`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "json array",
			raw:      `["a","b"]`,
			wantKind: KindPlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.raw, got.Raw)
			assert.Equal(t, tt.wantEnv, got.Envelope)
		})
	}
}

func TestClassify_UnwrapsOnlyOneLevel(t *testing.T) {
	inner := `{"cipherText":"a","salt":"b","iv":"c"}`
	once, err := json.Marshal(inner)
	require.NoError(t, err)
	twice, err := json.Marshal(string(once))
	require.NoError(t, err)

	assert.Equal(t, KindStructured, Classify(string(once)).Kind)
	assert.Equal(t, KindUnrecognized, Classify(string(twice)).Kind)
}

func TestClassify_NeverPanics(t *testing.T) {
	inputs := []string{
		"{", "}", `"`, `""`, `"{"`, `"{}"`, "{}", "[]", "\x00\xff", strings.Repeat("{", 10000),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Classify(in) }, "input %q", in)
	}
}

func TestHeuristicSniffer(t *testing.T) {
	var s Sniffer = NewSniffer()
	assert.Equal(t, KindStructured, s.Classify(`{"cipherText":"a","salt":"b","iv":"c"}`).Kind)
}

func TestEncode(t *testing.T) {
	env := models.Envelope{CipherText: "Y3Q=", Salt: "c2FsdA==", IV: "aXY="}

	got, err := Encode(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cipherText":"Y3Q=","salt":"c2FsdA==","iv":"aXY="}`, got)

	c := Classify(got)
	assert.Equal(t, KindStructured, c.Kind)
	assert.Equal(t, env, c.Envelope)
}

func TestEncode_Incomplete(t *testing.T) {
	_, err := Encode(models.Envelope{CipherText: "a"})
	assert.ErrorIs(t, err, ErrIncompleteEnvelope)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "structured", KindStructured.String())
	assert.Equal(t, "unrecognized", KindUnrecognized.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
