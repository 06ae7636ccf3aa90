package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid. Several of them may be joined in one error.
var (
	// ErrInvalidAppConfigs indicates missing credentials (API key, secret
	// or user id).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates an unusable endpoint or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing backup directory or
	// journal location.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates a retry or reconciliation bound that
	// cannot work (for example zero attempts).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
