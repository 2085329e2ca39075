package validators

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/secure-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the record identifier.
	FieldID = "id"

	// FieldUserID targets the record owner.
	FieldUserID = "user_id"

	// FieldTitle targets the clear-text item name.
	FieldTitle = "title"

	// FieldUsername targets the plaintext login name of a form.
	FieldUsername = "username"

	// FieldPassword targets the plaintext secret of a form.
	FieldPassword = "password"

	// FieldURL targets the optional site address.
	FieldURL = "url"
)

// MaxTitleLength is the longest accepted title, in characters.
const MaxTitleLength = 200

// VaultValidator checks vault forms before encryption and stored records
// before persistence.
type VaultValidator struct {
	// placeholders are display-only values that must never be encrypted.
	placeholders []string
}

// NewVaultValidator returns a [Validator] for [models.VaultForm] and
// [models.VaultRecord]. Values equal to any of placeholders are rejected in
// secret fields.
func NewVaultValidator(placeholders ...string) Validator {
	return &VaultValidator{placeholders: placeholders}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultForm:
		return v.validateForm(ctx, value, fields...)
	case *models.VaultForm:
		return v.validateForm(ctx, *value, fields...)

	case models.VaultRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.VaultRecord:
		return v.validateRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateForm(_ context.Context, form models.VaultForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldPassword, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(form.ID) == "" {
				return ErrInvalidID
			}
		case FieldTitle:
			if err := validateTitle(form.Title); err != nil {
				return err
			}
		case FieldUsername:
			if form.Username == "" {
				return ErrEmptyUsername
			}
			if v.isPlaceholder(form.Username) {
				return ErrPlaceholderSave
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrEmptyPassword
			}
			if v.isPlaceholder(form.Password) {
				return ErrPlaceholderSave
			}
		case FieldURL:
			if err := validateURL(form.URL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateRecord(_ context.Context, record models.VaultRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(record.ID) == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if strings.TrimSpace(record.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if err := validateTitle(record.Title); err != nil {
				return err
			}
		case FieldURL:
			if err := validateURL(record.URL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) isPlaceholder(s string) bool {
	for _, p := range v.placeholders {
		if s == p {
			return true
		}
	}
	return false
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// validateURL accepts an empty value.
func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL
	}
	return nil
}
