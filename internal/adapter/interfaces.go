// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client of the remote vault REST API.
//
// [VaultAPI] exposes the four record endpoints. Sensitive fields travel in
// their stored form: encryption happens before a record reaches this package
// and reconciliation after it leaves. HTTP status codes are mapped to the
// sentinel errors in errors.go so callers can match with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VaultAPI is the remote record store.
type VaultAPI interface {
	// List fetches every record of userID via GET /vault/{userId}.
	List(ctx context.Context, userID string) ([]models.VaultRecord, error)

	// Create sends a new record via POST /vault and returns the stored copy.
	Create(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// Update replaces a record via PUT /vault/{id}.
	Update(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// Delete removes a record via DELETE /vault/{id}.
	Delete(ctx context.Context, userID, id string) error
}
