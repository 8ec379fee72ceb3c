package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialAlreadyExists is returned when a credential with the same
	// digest is already stored.
	ErrCredentialAlreadyExists = errors.New("credential already exists")

	// ErrCredentialNotFound is returned when no stored credential matches the
	// digest, or when a revoke targets a credential that is already revoked.
	ErrCredentialNotFound = errors.New("credential was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrEmptyDSN is returned when no connection string is configured.
	ErrEmptyDSN = errors.New("empty database dsn")

	// ErrMigrating is returned when the embedded migrations cannot be applied.
	ErrMigrating = errors.New("error applying migrations")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan credential row")
)
