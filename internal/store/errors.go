package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when creating or updating a user
	// fails because another account already uses the same e-mail.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set, or when an update or
	// delete affects no rows.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCollectionEntryNotFound is returned when a delete targets a
	// (user_id, movie_id, kind) entry that does not exist. An entry owned by
	// another user is indistinguishable from a missing one.
	ErrCollectionEntryNotFound = errors.New("collection entry was not found")

	// ErrOwnerNotFound is returned when a collection entry references a user
	// that no longer exists (foreign key violation).
	ErrOwnerNotFound = errors.New("collection owner was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
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
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
