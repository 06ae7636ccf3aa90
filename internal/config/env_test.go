// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_API_KEY":    "key",
		"APP_API_SECRET": "secret",
		"APP_AUTH_TOKEN": "token",
		"APP_USER_ID":    "12345@N00",

		"ADAPTER_ENDPOINT":            "http://localhost:8080/rest",
		"ADAPTER_REQUEST_TIMEOUT":     "10s",
		"ADAPTER_REQUESTS_PER_SECOND": "2.5",

		"STORAGE_DIR":         "/var/backup",
		"STORAGE_JOURNAL_DSN": "/var/backup/journal.db",

		"SYNC_LIMIT":           "ps",
		"SYNC_RECURSE":         "true",
		"SYNC_DATE":            "2024-01-01|2024-01-03",
		"SYNC_QUIET":           "true",
		"SYNC_RETRY_ATTEMPTS":  "3",
		"SYNC_RETRY_DELAY":     "250ms",
		"SYNC_MAX_CHAIN_DEPTH": "42",

		"TELEMETRY_OTLP_ENDPOINT": "localhost:4317",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "key", cfg.App.APIKey)
	assert.Equal(t, "secret", cfg.App.APISecret)
	assert.Equal(t, "token", cfg.App.AuthToken)
	assert.Equal(t, "12345@N00", cfg.App.UserID)

	assert.Equal(t, "http://localhost:8080/rest", cfg.Adapter.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RequestsPerSecond, 0.0001)

	assert.Equal(t, "/var/backup", cfg.Storage.Dir)
	assert.Equal(t, "/var/backup/journal.db", cfg.Storage.JournalDSN)

	assert.Equal(t, "ps", cfg.Sync.Limit)
	assert.True(t, cfg.Sync.Recurse)
	assert.Equal(t, "2024-01-01|2024-01-03", cfg.Sync.Date)
	assert.True(t, cfg.Sync.Quiet)
	assert.Equal(t, 3, cfg.Sync.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.RetryDelay)
	assert.Equal(t, 42, cfg.Sync.MaxChainDepth)

	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SYNC_RETRY_DELAY": "soon"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"SYNC_RETRY_ATTEMPTS": "five"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"seconds", "30s", 30 * time.Second},
		{"minutes", "5m", 5 * time.Minute},
		{"mixed", "1m30s", 90 * time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.value})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_API_KEY",
		"APP_API_SECRET",
		"APP_AUTH_TOKEN",
		"APP_USER_ID",

		"ADAPTER_ENDPOINT",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_REQUESTS_PER_SECOND",

		"STORAGE_DIR",
		"STORAGE_JOURNAL_DSN",

		"SYNC_LIMIT",
		"SYNC_RECURSE",
		"SYNC_DATE",
		"SYNC_QUIET",
		"SYNC_RETRY_ATTEMPTS",
		"SYNC_RETRY_DELAY",
		"SYNC_MAX_CHAIN_DEPTH",

		"TELEMETRY_OTLP_ENDPOINT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
