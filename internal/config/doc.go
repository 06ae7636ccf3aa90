// Package config provides configuration loading, merging, and validation
// facilities for photobackup.
//
// Configuration is assembled from multiple sources. The first source that
// sets a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for a sync run and
// [GetStorageConfig] for commands that only read local state.
package config
