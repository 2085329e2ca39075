package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

// vaultRepository is the database/sql implementation of [VaultRepository]
// over the "vault_records" table. Queries are generated with squirrel using
// the placeholder format of the connected driver.
type vaultRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (v *vaultRepository) List(ctx context.Context, userID string) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(v.placeholder, userID)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = v.withRetry(ctx, func() error {
		var qErr error
		rows, qErr = v.DB.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.List").
			Msg("failed to execute query for listing vault records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.VaultRecord, 0, 16)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultRepository.List").
				Int("row", len(records)).
				Msg("failed to scan vault record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.List").
			Msg("error iterating vault records")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (v *vaultRepository) Get(ctx context.Context, userID, id string) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(v.placeholder, userID, id)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.Get").Msg("failed to build query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanRecord(v.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Get").
			Str("id", id).
			Msg("failed to get vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (v *vaultRepository) Create(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	now := v.now()
	query, args, err := buildInsertRecordQuery(v.placeholder, record, now)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.Create").Msg("failed to build query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = v.withRetry(ctx, func() error {
		var execErr error
		result, execErr = v.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.VaultRecord{}, fmt.Errorf("%w: %s", ErrRecordAlreadyExists, record.ID)
		}
		log.Err(err).
			Str("func", "vaultRepository.Create").
			Str("id", record.ID).
			Msg("failed to insert vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.VaultRecord{}, ErrRecordNotSaved
	}

	record.CreatedAt = &now
	record.UpdatedAt = &now
	return record, nil
}

func (v *vaultRepository) Update(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	now := v.now()
	query, args, err := buildUpdateRecordQuery(v.placeholder, record, now)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.Update").Msg("failed to build query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = v.withRetry(ctx, func() error {
		var execErr error
		result, execErr = v.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Update").
			Str("id", record.ID).
			Msg("failed to update vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.VaultRecord{}, ErrRecordNotFound
	}

	stored, err := v.Get(ctx, record.UserID, record.ID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "vaultRepository.Update").
			Str("id", record.ID).
			Msg("record updated but could not be reloaded")
		record.UpdatedAt = &now
		return record, nil
	}
	return stored, nil
}

func (v *vaultRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(v.placeholder, userID, id)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = v.withRetry(ctx, func() error {
		var execErr error
		result, execErr = v.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Delete").
			Str("id", id).
			Msg("failed to delete vault record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.VaultRecord, error) {
	var (
		record               models.VaultRecord
		url, notes           sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Title,
		&record.Username,
		&record.Password,
		&url,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.VaultRecord{}, err
	}

	record.URL = url.String
	record.Notes = notes.String
	if createdAt.Valid {
		record.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		record.UpdatedAt = &updatedAt.Time
	}
	return record, nil
}
