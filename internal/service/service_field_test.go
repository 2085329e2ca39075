package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/envelope"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/models"
)

func newTestFieldSvc(t *testing.T) (FieldService, *mock.MockCipherEngine, *mock.MockPasswordGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipherEngine(ctrl)
	gen := mock.NewMockPasswordGenerator(ctrl)
	return NewFieldService(cipher, gen), cipher, gen
}

func TestFieldService_EncryptField(t *testing.T) {
	svc, cipher, _ := newTestFieldSvc(t)
	env := models.Envelope{CipherText: "YQ==", Salt: "cw==", IV: "aQ=="}
	cipher.EXPECT().Encrypt("hello", testUserID).Return(env, nil)

	got, stored, err := svc.EncryptField(context.Background(), "hello", testUserID)
	require.NoError(t, err)
	assert.Equal(t, env, got)

	c := envelope.Classify(stored)
	assert.Equal(t, envelope.KindStructured, c.Kind)
	assert.Equal(t, env, c.Envelope)
}

func TestFieldService_EncryptField_Error(t *testing.T) {
	svc, cipher, _ := newTestFieldSvc(t)
	cipher.EXPECT().Encrypt("", testUserID).Return(models.Envelope{}, crypto.ErrInput)

	_, stored, err := svc.EncryptField(context.Background(), "", testUserID)
	require.ErrorIs(t, err, crypto.ErrInput)
	assert.Empty(t, stored)
}

func TestFieldService_DecryptField(t *testing.T) {
	svc, cipher, _ := newTestFieldSvc(t)
	env := models.Envelope{CipherText: "YQ==", Salt: "cw==", IV: "aQ=="}

	cipher.EXPECT().Decrypt(env, testUserID).Return("hello", nil)
	got, err := svc.DecryptField(context.Background(), env, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	cipher.EXPECT().Decrypt(env, "other").Return("", crypto.ErrAuthentication)
	_, err = svc.DecryptField(context.Background(), env, "other")
	require.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestFieldService_GeneratePassword(t *testing.T) {
	svc, _, gen := newTestFieldSvc(t)
	opts := models.DefaultGeneratorOptions()
	gen.EXPECT().Generate(opts).Return("Xy7#pQ2!mN9$kL4@", nil)

	got, err := svc.GeneratePassword(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "Xy7#pQ2!mN9$kL4@", got)
}
