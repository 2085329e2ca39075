// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/migrations"
)

const (
	maxRetries     = 3
	retryBaseDelay = 50 * time.Millisecond
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// the placeholder format for generated queries and an error classifier.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens a connection for the configured driver, pings it and
// returns a ready [DB]. Migrations are not applied; call [DB.Migrate].
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withRetry runs op until it succeeds, fails with a non-retryable error,
// the context ends or the attempts are exhausted.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := range maxRetries {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxRetries-1 {
			break
		}

		db.logger.Warn().
			Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBaseDelay << attempt):
		}
	}
	return err
}
