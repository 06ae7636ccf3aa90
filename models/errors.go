package models

import "errors"

// Scope validation errors. [SyncScope.Validate] joins every violation it
// finds, so callers match them with [errors.Is].
var (
	ErrEmptyScope             = errors.New("limit is empty, nothing to sync")
	ErrUnknownKind            = errors.New("unknown limit character")
	ErrIDsNeedExclusiveKind   = errors.New("ids given, one of c, p or s must be in the limit")
	ErrMultipleExclusiveKinds = errors.New("ids given and more than one of c, p or s is in the limit")
	ErrRecursePhotos          = errors.New("cannot recurse when photos are in the limit")
	ErrCollectionsNeedRecurse = errors.New("collections with ids require recursion")
	ErrRecurseWithoutIDs      = errors.New("cannot recurse without ids")
	ErrDatesWithIDs           = errors.New("dates cannot accompany ids")
	ErrDatesNeedPhotosOnly    = errors.New("dates can only be used with photos as the only limit")
	ErrInvalidDateRange       = errors.New("invalid date range")
)
