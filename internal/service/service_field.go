package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/envelope"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

type fieldService struct {
	cipher    crypto.CipherEngine
	generator crypto.PasswordGenerator
}

func NewFieldService(cipher crypto.CipherEngine, generator crypto.PasswordGenerator) FieldService {
	return &fieldService{cipher: cipher, generator: generator}
}

func (f *fieldService) EncryptField(ctx context.Context, plainText, userID string) (models.Envelope, string, error) {
	env, err := f.cipher.Encrypt(plainText, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fieldService.EncryptField").Msg("encrypt failed")
		return models.Envelope{}, "", err
	}

	stored, err := envelope.Encode(env)
	if err != nil {
		return models.Envelope{}, "", fmt.Errorf("encode envelope: %w", err)
	}
	return env, stored, nil
}

func (f *fieldService) DecryptField(ctx context.Context, env models.Envelope, userID string) (string, error) {
	plain, err := f.cipher.Decrypt(env, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "fieldService.DecryptField").Msg("decrypt failed")
		return "", err
	}
	return plain, nil
}

func (f *fieldService) GeneratePassword(_ context.Context, opts models.GeneratorOptions) (string, error) {
	return f.generator.Generate(opts)
}
