package crypto

import "github.com/MKhiriev/secure-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a stable user identifier into a symmetric key.
//
// The derivation is deterministic: any client holding only the user ID can
// rebuild the key, so no key exchange is needed.
type KeyDeriver interface {
	// DeriveKey returns the AES-256-GCM key for userID. It fails with
	// [ErrDerivation] when userID is empty.
	DeriveKey(userID string) (*SymmetricKey, error)
}

// CipherEngine encrypts and decrypts single vault field values.
type CipherEngine interface {
	// Encrypt seals plainText under the key of userID using a fresh random
	// IV and returns the Base64 envelope. Both arguments must be non-empty.
	Encrypt(plainText, userID string) (models.Envelope, error)

	// Decrypt opens envelope with the key of userID. It either returns the
	// original text or fails with one of [ErrInput], [ErrDecode],
	// [ErrDerivation], [ErrAuthentication] or [ErrEmptyResult].
	Decrypt(envelope models.Envelope, userID string) (string, error)
}

// PasswordGenerator produces random passwords.
type PasswordGenerator interface {
	Generate(opts models.GeneratorOptions) (string, error)
}
