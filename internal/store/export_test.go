package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/secure-vault/internal/logger"
)

// NewDBWithClassifier wraps an open connection using '?' placeholders and
// the given classifier.
func NewDBWithClassifier(db *sql.DB, classifier ErrorClassificator) *DB {
	return &DB{
		DB:                 db,
		placeholder:        sq.Question,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}
}
