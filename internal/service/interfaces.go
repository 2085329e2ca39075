// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the vault business logic: reconciliation of stored
// fields into display values, the record save/list/delete flow and the field
// operations exposed by the local HTTP agent.
package service

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordSource is where raw vault records live. It is implemented by the
// local database repository and by the remote REST adapter.
type RecordSource interface {
	List(ctx context.Context, userID string) ([]models.VaultRecord, error)
	Create(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	Update(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)
	Delete(ctx context.Context, userID, id string) error
}

// Reconciler turns stored field values into display values.
type Reconciler interface {
	// ReconcileField returns the display value of one stored field. It never
	// fails: anything that cannot be decrypted is shown as a placeholder or
	// as-is and flagged legacy.
	ReconcileField(ctx context.Context, raw, userID string) models.ReconciledField

	// ReconcileRecords reconciles every sensitive field of records
	// concurrently and returns entries in input order. The only error is the
	// cancellation of ctx.
	ReconcileRecords(ctx context.Context, records []models.VaultRecord, userID string) ([]models.VaultEntry, error)
}

// VaultService is the record flow used by the terminal client.
type VaultService interface {
	List(ctx context.Context, userID string) ([]models.VaultEntry, error)
	Search(entries []models.VaultEntry, term string) []models.VaultEntry
	Save(ctx context.Context, userID string, form models.VaultForm) (models.VaultEntry, error)
	Delete(ctx context.Context, userID, id string) error
	EditForm(entry models.VaultEntry) (models.VaultForm, bool)
}

// FieldService exposes single-field operations to the HTTP agent.
type FieldService interface {
	// EncryptField returns the envelope and its stored JSON form.
	EncryptField(ctx context.Context, plainText, userID string) (models.Envelope, string, error)
	DecryptField(ctx context.Context, env models.Envelope, userID string) (string, error)
	GeneratePassword(ctx context.Context, opts models.GeneratorOptions) (string, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
