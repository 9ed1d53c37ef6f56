package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a user lookup produces an empty
	// result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note lookup, update or delete
	// targets a slug or id that does not exist for the given author.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrSlugAlreadyExists is returned when the unique index on notes.slug
	// rejects an insert or update.
	ErrSlugAlreadyExists = errors.New("slug already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Configuration errors returned while opening storages.
var (
	// ErrUnsupportedDSN is returned when the database DSN matches none of the
	// supported backends.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrNilDB is returned when a nil *sql.DB is handed to a constructor.
	ErrNilDB = errors.New("db is nil")
)
