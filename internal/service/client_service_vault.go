package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/envelope"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/validators"
	"github.com/MKhiriev/secure-vault/models"
)

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() string
}

type vaultService struct {
	source     RecordSource
	cipher     crypto.CipherEngine
	reconciler Reconciler
	validator  validators.Validator
	ids        IDGenerator
}

// NewVaultService wires the record flow over source.
func NewVaultService(
	source RecordSource,
	cipher crypto.CipherEngine,
	reconciler Reconciler,
	validator validators.Validator,
	ids IDGenerator,
) VaultService {
	return &vaultService{
		source:     source,
		cipher:     cipher,
		reconciler: reconciler,
		validator:  validator,
		ids:        ids,
	}
}

// List fetches the raw records of userID and reconciles them for display.
func (v *vaultService) List(ctx context.Context, userID string) ([]models.VaultEntry, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	records, err := v.source.List(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.List").
			Msg("failed to fetch vault records")
		return nil, fmt.Errorf("list records: %w", mapSourceError(err))
	}

	return v.reconciler.ReconcileRecords(ctx, records, userID)
}

// Search keeps entries whose title or username contains term, ignoring case.
// An empty term matches everything.
func (v *vaultService) Search(entries []models.VaultEntry, term string) []models.VaultEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	found := make([]models.VaultEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Username), term) {
			found = append(found, e)
		}
	}
	return found
}

// Save encrypts the secret fields of form and creates or updates the record.
// This is the only place where legacy values are rewritten as envelopes.
func (v *vaultService) Save(ctx context.Context, userID string, form models.VaultForm) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.VaultEntry{}, ErrNoUserID
	}

	form.Title = strings.TrimSpace(form.Title)
	form.URL = strings.TrimSpace(form.URL)
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	username, err := v.sealField(form.Username, userID)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Save").Msg("failed to encrypt username")
		return models.VaultEntry{}, fmt.Errorf("encrypt username: %w", err)
	}
	password, err := v.sealField(form.Password, userID)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Save").Msg("failed to encrypt password")
		return models.VaultEntry{}, fmt.Errorf("encrypt password: %w", err)
	}

	record := models.VaultRecord{
		ID:       form.ID,
		UserID:   userID,
		Title:    form.Title,
		Username: username,
		Password: password,
		URL:      form.URL,
		Notes:    form.Notes,
	}

	var saved models.VaultRecord
	if record.ID == "" {
		record.ID = v.ids.Generate()
		saved, err = v.source.Create(ctx, record)
	} else {
		saved, err = v.source.Update(ctx, record)
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.Save").
			Str("id", record.ID).
			Msg("failed to store vault record")
		return models.VaultEntry{}, fmt.Errorf("save record: %w", mapSourceError(err))
	}

	log.Debug().Str("func", "vaultService.Save").Str("id", saved.ID).Msg("vault record saved")

	return newEntry(saved,
		models.ReconciledField{Value: form.Username},
		models.ReconciledField{Value: form.Password},
	), nil
}

func (v *vaultService) sealField(plainText, userID string) (string, error) {
	env, err := v.cipher.Encrypt(plainText, userID)
	if err != nil {
		return "", err
	}
	return envelope.Encode(env)
}

func (v *vaultService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrNoUserID
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty record id", ErrInvalidDataProvided)
	}

	if err := v.source.Delete(ctx, userID, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.Delete").
			Str("id", id).
			Msg("failed to delete vault record")
		return fmt.Errorf("delete record: %w", mapSourceError(err))
	}
	return nil
}

// EditForm prefills the edit form from entry. Placeholder values become
// empty so they are never encrypted; the flag reports a legacy entry that
// should be re-saved.
func (v *vaultService) EditForm(entry models.VaultEntry) (models.VaultForm, bool) {
	return models.VaultForm{
		ID:       entry.ID,
		Title:    entry.Title,
		Username: clearPlaceholder(entry.Username),
		Password: clearPlaceholder(entry.Password),
		URL:      entry.URL,
		Notes:    entry.Notes,
	}, entry.IsLegacy
}

func clearPlaceholder(value string) string {
	if slices.Contains(app.Placeholders(), value) {
		return ""
	}
	return value
}
