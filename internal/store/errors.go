package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a query or update targets a vault
	// record (identified by id and user_id) that does not exist.
	ErrRecordNotFound = errors.New("vault record was not found")

	// ErrRecordAlreadyExists is returned when an insert collides with an
	// existing record id.
	ErrRecordAlreadyExists = errors.New("vault record already exists")

	// ErrRecordNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrRecordNotSaved = errors.New("vault record was not saved")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither sqlite3 nor pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan vault record row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan vault record rows")
)
