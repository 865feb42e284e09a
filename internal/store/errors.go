package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a statement or a reference does
	// not exist for the given company.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrCursorNotFound is returned when a listing starts at an id that is
	// not present.
	ErrCursorNotFound = errors.New("page cursor points at an unknown document")

	// ErrDocumentAlreadyExists is returned when an insert collides with an
	// existing id.
	ErrDocumentAlreadyExists = errors.New("document already exists")

	// ErrUnsupportedDSN is returned when the DSN names neither PostgreSQL nor
	// an SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
