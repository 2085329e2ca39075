package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/envelope"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

// DefaultReconcileConcurrency bounds the number of fields decrypted at once
// when no limit is configured.
const DefaultReconcileConcurrency = 8

type reconciler struct {
	cipher  crypto.CipherEngine
	sniffer envelope.Sniffer
	limit   int
}

// NewReconciler returns a [Reconciler] that decrypts with cipher. limit caps
// concurrent field decryptions; values below 1 use
// [DefaultReconcileConcurrency].
func NewReconciler(cipher crypto.CipherEngine, sniffer envelope.Sniffer, limit int) Reconciler {
	if limit < 1 {
		limit = DefaultReconcileConcurrency
	}
	return &reconciler{cipher: cipher, sniffer: sniffer, limit: limit}
}

func (r *reconciler) ReconcileField(ctx context.Context, raw, userID string) models.ReconciledField {
	return r.reconcile(ctx, raw, userID, app.PlaceholderNoValue)
}

func (r *reconciler) ReconcileRecords(ctx context.Context, records []models.VaultRecord, userID string) ([]models.VaultEntry, error) {
	usernames := make([]models.ReconciledField, len(records))
	passwords := make([]models.ReconciledField, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			usernames[i] = r.reconcile(gctx, records[i].Username, userID, app.PlaceholderNoUsername)
			return nil
		})
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			passwords[i] = r.reconcile(gctx, records[i].Password, userID, app.PlaceholderNoPassword)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]models.VaultEntry, len(records))
	for i, rec := range records {
		entries[i] = newEntry(rec, usernames[i], passwords[i])
	}
	return entries, nil
}

// reconcile maps one stored value to its display form. emptyPlaceholder is
// shown for an empty stored value.
func (r *reconciler) reconcile(ctx context.Context, raw, userID, emptyPlaceholder string) models.ReconciledField {
	c := r.sniffer.Classify(raw)

	if c.Kind == envelope.KindStructured {
		plain, err := r.cipher.Decrypt(c.Envelope, userID)
		if err == nil {
			return models.ReconciledField{Value: plain, IsLegacy: false}
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "reconciler.reconcile").
			Bool("undecryptable", crypto.IsUndecryptable(err)).
			Msg("stored envelope could not be decrypted")
		return models.ReconciledField{Value: app.PlaceholderEncrypted, IsLegacy: true}
	}

	if raw == "" {
		return models.ReconciledField{Value: emptyPlaceholder, IsLegacy: true}
	}

	if c.Kind == envelope.KindUnrecognized {
		logger.FromContext(ctx).Debug().
			Str("func", "reconciler.reconcile").
			Int("length", len(raw)).
			Msg("unrecognized stored value shown as-is")
	}
	return models.ReconciledField{Value: raw, IsLegacy: true}
}

func newEntry(rec models.VaultRecord, username, password models.ReconciledField) models.VaultEntry {
	return models.VaultEntry{
		ID:                rec.ID,
		UserID:            rec.UserID,
		Title:             rec.Title,
		Username:          username.Value,
		Password:          password.Value,
		URL:               rec.URL,
		Notes:             rec.Notes,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
		EncryptedUsername: rec.Username,
		EncryptedPassword: rec.Password,
		IsLegacy:          username.IsLegacy || password.IsLegacy,
	}
}
