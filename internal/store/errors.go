package store

import "errors"

// Sentinel errors of the backup tree. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrOutputNotFound is returned when a file expected from an earlier run
	// is not present in the backup directory.
	ErrOutputNotFound = errors.New("output file not found")

	// ErrMalformedOutput is returned when a file of the backup directory
	// cannot be decoded.
	ErrMalformedOutput = errors.New("output file is malformed")

	// ErrWritingOutput is returned when a file cannot be written or moved
	// into place.
	ErrWritingOutput = errors.New("error writing output file")
)

// Journal errors.
var (
	// ErrRunNotFound is returned when a run id does not match any recorded
	// run.
	ErrRunNotFound = errors.New("sync run was not found")
)

// Low-level database operation errors. These are wrapped by journal methods
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("error executing sql statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
