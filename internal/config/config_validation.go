// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// normalize expands the storage directory and derives the journal location
// when it was not given.
func (cfg *StructuredConfig) normalize() error {
	return cfg.Storage.normalize()
}

func (s *Storage) normalize() error {
	if s.Dir == "" {
		return nil
	}

	dir, err := homedir.Expand(s.Dir)
	if err != nil {
		return fmt.Errorf("error expanding storage dir: %w", err)
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return fmt.Errorf("error resolving storage dir: %w", err)
	}
	s.Dir = dir

	if s.JournalDSN == "" {
		s.JournalDSN = filepath.Join(dir, DefaultJournalName)
	} else if s.JournalDSN, err = homedir.Expand(s.JournalDSN); err != nil {
		return fmt.Errorf("error expanding journal path: %w", err)
	}

	return nil
}

// validate checks that the final merged [StructuredConfig] can drive a sync.
// Every failing group is reported.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Adapter.validate(),
		cfg.Storage.validate(),
		cfg.Sync.validate(),
	)
}

func (a App) validate() error {
	if a.APIKey == "" || a.APISecret == "" || a.UserID == "" {
		return fmt.Errorf("%w: api key, api secret and user id are required", ErrInvalidAppConfigs)
	}
	return nil
}

func (a Adapter) validate() error {
	u, err := url.Parse(a.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q is not an absolute url", ErrInvalidAdapterConfigs, a.Endpoint)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	return nil
}

func (s Storage) validate() error {
	if s.Dir == "" {
		return fmt.Errorf("%w: storage dir is required", ErrInvalidStorageConfigs)
	}
	if s.JournalDSN == "" || s.JournalDSN == ":memory:" {
		return fmt.Errorf("%w: journal must be a file", ErrInvalidStorageConfigs)
	}
	return nil
}

func (s Sync) validate() error {
	if s.RetryAttempts < 1 {
		return fmt.Errorf("%w: retry attempts must be at least 1", ErrInvalidSyncConfigs)
	}
	if s.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", ErrInvalidSyncConfigs)
	}
	if s.MaxChainDepth < 1 {
		return fmt.Errorf("%w: max chain depth must be at least 1", ErrInvalidSyncConfigs)
	}
	return nil
}
