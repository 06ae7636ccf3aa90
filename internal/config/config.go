// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Defaults applied after every other source.
const (
	DefaultEndpoint          = "https://api.flickr.com/services/rest/"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRequestsPerSecond = 1.0
	DefaultLimit             = "cfgoprst"
	DefaultRetryAttempts     = 5
	DefaultRetryDelay        = time.Second
	DefaultMaxChainDepth     = 10000
	DefaultJournalName       = ".journal.db"
)

// StructuredConfig is the top-level configuration of photobackup. It is
// populated by merging command-line flags, environment variables and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the account credentials.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoint and request pacing.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the output directory and the journal location.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the selection and retry policy of a run.
	Sync Sync `envPrefix:"SYNC_"`

	// Telemetry holds the tracing exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the credentials used to sign remote calls.
type App struct {
	// APIKey identifies the application to the remote.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// APISecret signs every request. Must be kept confidential.
	// Env: APP_API_SECRET
	APISecret string `env:"API_SECRET"`

	// AuthToken is a pre-issued token granting read access to private data.
	// Optional; without it only public data is backed up.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// UserID is the NSID of the account to back up.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`
}

// Adapter holds settings of the remote REST endpoint.
type Adapter struct {
	// Endpoint is the REST URL every method is posted to.
	// Env: ADAPTER_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds a single remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond caps the call rate. Negative disables the limiter.
	// Env: ADAPTER_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`
}

// Storage holds the local destinations.
type Storage struct {
	// Dir is the root of the backup tree. "~" is expanded.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// JournalDSN is the SQLite file recording runs. Defaults to a file
	// inside Dir.
	// Env: STORAGE_JOURNAL_DSN
	JournalDSN string `env:"JOURNAL_DSN"`
}

// Sync holds the run selection and retry policy.
type Sync struct {
	// Limit is the set of kind letters to sync.
	// Env: SYNC_LIMIT
	Limit string `env:"LIMIT"`

	// Recurse follows ids into nested sets and photos.
	// Env: SYNC_RECURSE
	Recurse bool `env:"RECURSE"`

	// Date selects popular photos of one day or a "FROM|TO" range.
	// Env: SYNC_DATE
	Date string `env:"DATE"`

	// Quiet hides progress lines.
	// Env: SYNC_QUIET
	Quiet bool `env:"QUIET"`

	// RetryAttempts is the total number of tries for one photo.
	// Env: SYNC_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryDelay is the pause between two tries.
	// Env: SYNC_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// MaxChainDepth bounds one predecessor walk during reconciliation.
	// Env: SYNC_MAX_CHAIN_DEPTH
	MaxChainDepth int `env:"MAX_CHAIN_DEPTH"`
}

// Telemetry holds the tracing exporter settings.
type Telemetry struct {
	// OTLPEndpoint is the host:port of an OTLP gRPC collector. Tracing is
	// off when empty.
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
}

// GetStructuredConfig loads, merges, and validates the configuration. Sources
// are applied in the following priority order (first non-zero value wins):
//  1. Command-line flags registered by [RegisterFlags] on fs
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Endpoint:          DefaultEndpoint,
			RequestTimeout:    DefaultRequestTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Sync: Sync{
			Limit:         DefaultLimit,
			RetryAttempts: DefaultRetryAttempts,
			RetryDelay:    DefaultRetryDelay,
			MaxChainDepth: DefaultMaxChainDepth,
		},
	}
}
