// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-memo-keeper application. It aggregates all sub-configurations and is
// populated by merging values from an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the backend holding the memo slot.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log configures where and how verbosely the application logs.
	Log Log `envPrefix:"LOG_"`

	// UI holds terminal front end preferences.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version overrides the version string shown in the build info window.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the storage slot.
type Storage struct {
	// Backend is either "sqlite" or "file".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// SlotKey names the slot the memo list is stored under.
	// Env: STORAGE_SLOT_KEY
	SlotKey string `env:"SLOT_KEY"`

	// DB holds the SQLite backend settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the JSON file backend settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// ":memory:" keeps everything in process.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds settings for the JSON file backend.
type Files struct {
	// SlotFile is the path of the JSON file holding all slots.
	// Env: STORAGE_FILES_SLOT_FILE
	SlotFile string `env:"SLOT_FILE"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the file log entries are appended to.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// UI holds terminal front end settings.
type UI struct {
	// Theme is "dark" or "light".
	// Env: UI_THEME
	Theme string `env:"THEME"`

	// SearchCacheSize bounds the number of memo bodies whose plain text is
	// kept between searches.
	// Env: UI_SEARCH_CACHE_SIZE
	SearchCacheSize int `env:"SEARCH_CACHE_SIZE"`

	// MaxImageBytes is the largest image file accepted for embedding.
	// Env: UI_MAX_IMAGE_BYTES
	MaxImageBytes int64 `env:"MAX_IMAGE_BYTES"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources. Later sources override non-zero fields of earlier
// ones:
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
