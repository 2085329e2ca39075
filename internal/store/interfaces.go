package store

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository persists vault records exactly as stored: sensitive
// fields are opaque strings and are never interpreted here.
type VaultRepository interface {
	// List returns every record owned by userID, oldest first.
	List(ctx context.Context, userID string) ([]models.VaultRecord, error)

	// Get returns one record. [ErrRecordNotFound] if it does not exist for
	// userID.
	Get(ctx context.Context, userID, id string) (models.VaultRecord, error)

	// Create inserts record and returns it with timestamps set.
	Create(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// Update replaces the mutable fields of an existing record and returns
	// the stored row.
	Update(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// Delete removes a record. [ErrRecordNotFound] if nothing was deleted.
	Delete(ctx context.Context, userID, id string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
