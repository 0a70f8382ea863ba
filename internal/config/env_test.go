// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"STORAGE_BACKEND":  "file",
		"STORAGE_SLOT_KEY": "custom_key",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DSN":          "/tmp/memos.db",
		"STORAGE_FILES_SLOT_FILE": "/tmp/memos.json",

		"LOG_FILE":  "/tmp/memo.log",
		"LOG_LEVEL": "info",

		"UI_THEME":             "light",
		"UI_SEARCH_CACHE_SIZE": "64",
		"UI_MAX_IMAGE_BYTES":   "1024",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, envVars)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "custom_key", cfg.Storage.SlotKey)
	assert.Equal(t, "/tmp/memos.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/memos.json", cfg.Storage.Files.SlotFile)

	assert.Equal(t, "/tmp/memo.log", cfg.Log.FilePath)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 64, cfg.UI.SearchCacheSize)
	assert.Equal(t, int64(1024), cfg.UI.MaxImageBytes)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STORAGE_DB_DSN": "/tmp/only.db",
		"UI_THEME":       "dark",
		"UNRELATED":      "ignored",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, envVars)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/tmp/only.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Files.SlotFile)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Zero(t, cfg.UI.SearchCacheSize)
	assert.Equal(t, Log{}, cfg.Log)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{})

	// Assert
	require.NoError(t, err)

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidNumber(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{"UI_SEARCH_CACHE_SIZE": "many"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"STORAGE_BACKEND": "file",
		"LOG_LEVEL":       "warn",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, nil))

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads for the duration of
// the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION",
		"STORAGE_BACKEND", "STORAGE_SLOT_KEY",
		"STORAGE_DB_DSN", "STORAGE_FILES_SLOT_FILE",
		"LOG_FILE", "LOG_LEVEL",
		"UI_THEME", "UI_SEARCH_CACHE_SIZE", "UI_MAX_IMAGE_BYTES",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
