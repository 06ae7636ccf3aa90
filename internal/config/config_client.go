package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// GetStorageConfig builds a storage-only view of the merged configuration.
// It is used by commands that only read local state (for example run
// history) and therefore do not need credentials.
func GetStorageConfig(fs *pflag.FlagSet) (*Storage, error) {
	cfg, err := newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if err = cfg.Storage.normalize(); err != nil {
		return nil, err
	}

	return &cfg.Storage, cfg.Storage.validate()
}
