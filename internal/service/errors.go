package service

import "errors"

var (
	// ErrMissingPrerequisite is returned before any remote call when an
	// identifier-scoped sync needs a file that only a full sync writes.
	ErrMissingPrerequisite = errors.New("missing prerequisite, run a full sync first")

	// ErrRetriesExhausted is returned when a photo could not be fetched
	// within the configured number of attempts. It aborts the run.
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrPredecessorCycle is returned when a predecessor walk revisits an
	// identifier.
	ErrPredecessorCycle = errors.New("predecessor chain loops back on itself")

	// ErrChainTooDeep is returned when a predecessor walk grows past the
	// configured maximum depth without reaching a known identifier.
	ErrChainTooDeep = errors.New("predecessor chain too deep")

	// ErrInvalidHierarchy is returned when the collection tree built from
	// the remote does not form a valid hierarchy.
	ErrInvalidHierarchy = errors.New("invalid collection hierarchy")
)
