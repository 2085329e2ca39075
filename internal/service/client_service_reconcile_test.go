package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/envelope"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/models"
)

const testUserID = "user-123"

var (
	goodEnvelope = models.Envelope{CipherText: "Y2lwaGVy", Salt: "dmF1bHQtYXBwLXNhbHQtMjAyNQ==", IV: "aXZpdml2aXZpdml2"}
	badEnvelope  = models.Envelope{CipherText: "Zm9yZWlnbg==", Salt: "dmF1bHQtYXBwLXNhbHQtMjAyNQ==", IV: "aXZpdml2aXZpdml2"}
)

func mustEncode(t *testing.T, env models.Envelope) string {
	t.Helper()
	s, err := envelope.Encode(env)
	require.NoError(t, err)
	return s
}

func newTestReconciler(t *testing.T, limit int) (Reconciler, *mock.MockCipherEngine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipherEngine(ctrl)
	return NewReconciler(cipher, envelope.NewSniffer(), limit), cipher
}

func TestReconciler_ReconcileField(t *testing.T) {
	structured := mustEncode(t, goodEnvelope)
	doubleEncoded := fmt.Sprintf("%q", structured)
	foreign := mustEncode(t, badEnvelope)
	long := strings.Repeat("p", 60)

	tests := []struct {
		name  string
		raw   string
		setup func(c *mock.MockCipherEngine)
		want  models.ReconciledField
	}{
		{
			name: "structured and decryptable",
			raw:  structured,
			setup: func(c *mock.MockCipherEngine) {
				c.EXPECT().Decrypt(goodEnvelope, testUserID).Return("alice", nil)
			},
			want: models.ReconciledField{Value: "alice", IsLegacy: false},
		},
		{
			name: "double encoded envelope",
			raw:  doubleEncoded,
			setup: func(c *mock.MockCipherEngine) {
				c.EXPECT().Decrypt(goodEnvelope, testUserID).Return("alice", nil)
			},
			want: models.ReconciledField{Value: "alice", IsLegacy: false},
		},
		{
			name: "structured but foreign key",
			raw:  foreign,
			setup: func(c *mock.MockCipherEngine) {
				c.EXPECT().Decrypt(badEnvelope, testUserID).Return("", fmt.Errorf("open: %w", crypto.ErrAuthentication))
			},
			want: models.ReconciledField{Value: app.PlaceholderEncrypted, IsLegacy: true},
		},
		{
			name: "structured but decodes to empty",
			raw:  structured,
			setup: func(c *mock.MockCipherEngine) {
				c.EXPECT().Decrypt(goodEnvelope, testUserID).Return("", crypto.ErrEmptyResult)
			},
			want: models.ReconciledField{Value: app.PlaceholderEncrypted, IsLegacy: true},
		},
		{
			name: "short legacy plaintext",
			raw:  "hunter2",
			want: models.ReconciledField{Value: "hunter2", IsLegacy: true},
		},
		{
			name: "empty value",
			raw:  "",
			want: models.ReconciledField{Value: app.PlaceholderNoValue, IsLegacy: true},
		},
		{
			name: "long unrecognized value shown raw",
			raw:  long,
			want: models.ReconciledField{Value: long, IsLegacy: true},
		},
		{
			name: "broken json shown raw",
			raw:  `{"cipherText":"abc"`,
			want: models.ReconciledField{Value: `{"cipherText":"abc"`, IsLegacy: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, cipher := newTestReconciler(t, 0)
			if tt.setup != nil {
				tt.setup(cipher)
			}

			got := r.ReconcileField(context.Background(), tt.raw, testUserID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconciler_ReconcileRecords_BatchIsolation(t *testing.T) {
	r, cipher := newTestReconciler(t, 2)

	structured := mustEncode(t, goodEnvelope)
	foreign := mustEncode(t, badEnvelope)

	cipher.EXPECT().Decrypt(goodEnvelope, testUserID).Return("secret", nil).AnyTimes()
	cipher.EXPECT().Decrypt(badEnvelope, testUserID).Return("", crypto.ErrAuthentication).AnyTimes()

	records := []models.VaultRecord{
		{ID: "r1", UserID: testUserID, Title: "Modern", Username: structured, Password: structured},
		{ID: "r2", UserID: testUserID, Title: "Foreign", Username: foreign, Password: structured},
		{ID: "r3", UserID: testUserID, Title: "Legacy", Username: "bob", Password: ""},
	}

	entries, err := r.ReconcileRecords(context.Background(), records, testUserID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "r1", entries[0].ID)
	assert.Equal(t, "secret", entries[0].Username)
	assert.Equal(t, "secret", entries[0].Password)
	assert.False(t, entries[0].IsLegacy)
	assert.Equal(t, structured, entries[0].EncryptedUsername)

	assert.Equal(t, "r2", entries[1].ID)
	assert.Equal(t, app.PlaceholderEncrypted, entries[1].Username)
	assert.Equal(t, "secret", entries[1].Password)
	assert.True(t, entries[1].IsLegacy)

	assert.Equal(t, "r3", entries[2].ID)
	assert.Equal(t, "bob", entries[2].Username)
	assert.Equal(t, app.PlaceholderNoPassword, entries[2].Password)
	assert.True(t, entries[2].IsLegacy)
}

func TestReconciler_ReconcileRecords_EmptyFieldPlaceholders(t *testing.T) {
	r, _ := newTestReconciler(t, 0)

	entries, err := r.ReconcileRecords(context.Background(),
		[]models.VaultRecord{{ID: "r1", Title: "Empty"}}, testUserID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, app.PlaceholderNoUsername, entries[0].Username)
	assert.Equal(t, app.PlaceholderNoPassword, entries[0].Password)
	assert.True(t, entries[0].IsLegacy)
}

func TestReconciler_ReconcileRecords_PreservesOrder(t *testing.T) {
	r, cipher := newTestReconciler(t, 4)

	var inFlight, peak atomic.Int32
	cipher.EXPECT().Decrypt(gomock.Any(), testUserID).DoAndReturn(func(env models.Envelope, _ string) (string, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		return "plain-" + env.CipherText, nil
	}).AnyTimes()

	records := make([]models.VaultRecord, 40)
	for i := range records {
		env := models.Envelope{CipherText: fmt.Sprintf("c%02d", i), Salt: "s", IV: "i"}
		records[i] = models.VaultRecord{ID: fmt.Sprintf("r%02d", i), Username: mustEncode(t, env), Password: mustEncode(t, env)}
	}

	entries, err := r.ReconcileRecords(context.Background(), records, testUserID)
	require.NoError(t, err)
	require.Len(t, entries, len(records))

	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("r%02d", i), e.ID)
		assert.Equal(t, fmt.Sprintf("plain-c%02d", i), e.Username)
		assert.Equal(t, fmt.Sprintf("plain-c%02d", i), e.Password)
	}
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestReconciler_ReconcileRecords_CancelledContext(t *testing.T) {
	r, _ := newTestReconciler(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries, err := r.ReconcileRecords(ctx, []models.VaultRecord{{ID: "r1", Username: "a", Password: "b"}}, testUserID)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, entries)
}

func TestReconciler_ReconcileRecords_Empty(t *testing.T) {
	r, _ := newTestReconciler(t, 0)

	entries, err := r.ReconcileRecords(context.Background(), nil, testUserID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReconciler_RealCipher(t *testing.T) {
	deriver := crypto.NewCachingKeyDeriver(crypto.NewKeyDeriver(), time.Minute)
	defer deriver.Close()
	engine := crypto.NewCipherEngine(deriver)
	r := NewReconciler(engine, envelope.NewSniffer(), 0)

	env, err := engine.Encrypt("correct horse", testUserID)
	require.NoError(t, err)
	stored := mustEncode(t, env)

	got := r.ReconcileField(context.Background(), stored, testUserID)
	assert.Equal(t, models.ReconciledField{Value: "correct horse", IsLegacy: false}, got)

	got = r.ReconcileField(context.Background(), stored, "someone-else")
	assert.Equal(t, models.ReconciledField{Value: app.PlaceholderEncrypted, IsLegacy: true}, got)
}
