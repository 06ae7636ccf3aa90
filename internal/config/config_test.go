// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStructuredConfig_FlagsOverrideEnvAndDefaults(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	t.Setenv("APP_API_KEY", "env-key")
	t.Setenv("APP_API_SECRET", "env-secret")
	t.Setenv("APP_USER_ID", "env-user")
	t.Setenv("SYNC_LIMIT", "s")

	fs := newTestFlagSet(t, "--api-key", "flag-key", "--dir", dir, "-l", "p")

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "flag-key", cfg.App.APIKey)
	assert.Equal(t, "env-secret", cfg.App.APISecret)
	assert.Equal(t, "p", cfg.Sync.Limit)
	assert.Equal(t, DefaultEndpoint, cfg.Adapter.Endpoint)
	assert.Equal(t, DefaultRetryAttempts, cfg.Sync.RetryAttempts)
	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, filepath.Join(dir, DefaultJournalName), cfg.Storage.JournalDSN)
}

func TestGetStructuredConfig_JSONBelowEnv(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.App.APIKey = "json-key"
	payload.App.APISecret = "json-secret"
	payload.App.UserID = "json-user"
	payload.Storage.Dir = t.TempDir()
	path := writeTempJSONConfig(t, payload)

	t.Setenv("APP_USER_ID", "env-user")
	t.Setenv("CONFIG", path)

	cfg, err := GetStructuredConfig(newTestFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.APIKey)
	assert.Equal(t, "env-user", cfg.App.UserID)
}

func TestGetStructuredConfig_MissingCredentials(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig(newTestFlagSet(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetStorageConfig_NoCredentialsNeeded(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()

	s, err := GetStorageConfig(newTestFlagSet(t, "--dir", dir))
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir)
	assert.Equal(t, filepath.Join(dir, DefaultJournalName), s.JournalDSN)
}

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaults()
		cfg.App = App{APIKey: "k", APISecret: "s", UserID: "u"}
		cfg.Storage = Storage{Dir: "/backup", JournalDSN: "/backup/.journal.db"}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing secret", mutate: func(c *StructuredConfig) { c.App.APISecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "relative endpoint", mutate: func(c *StructuredConfig) { c.Adapter.Endpoint = "/rest" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "in-memory journal", mutate: func(c *StructuredConfig) { c.Storage.JournalDSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero attempts", mutate: func(c *StructuredConfig) { c.Sync.RetryAttempts = 0 }, wantErr: ErrInvalidSyncConfigs},
		{name: "negative delay", mutate: func(c *StructuredConfig) { c.Sync.RetryDelay = -1 }, wantErr: ErrInvalidSyncConfigs},
		{name: "zero chain depth", mutate: func(c *StructuredConfig) { c.Sync.MaxChainDepth = 0 }, wantErr: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStorage_Normalize_ExpandsHome(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", "/home/tester")

	s := Storage{Dir: "~/photos"}
	require.NoError(t, s.normalize())

	assert.Equal(t, "/home/tester/photos", s.Dir)
	assert.Equal(t, "/home/tester/photos/.journal.db", s.JournalDSN)
}

func TestStorage_Normalize_KeepsExplicitJournal(t *testing.T) {
	s := Storage{Dir: "/backup", JournalDSN: "/var/lib/journal.db"}
	require.NoError(t, s.normalize())
	assert.Equal(t, "/var/lib/journal.db", s.JournalDSN)
}
