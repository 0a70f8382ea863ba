// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Backend: "file", SlotKey: "first"}},
		&StructuredConfig{Storage: Storage{Backend: "sqlite"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "first", cfg.Storage.SlotKey)
}

// TestBuild_RejectsNegativeLimits verifies structural validation.
func TestBuild_RejectsNegativeLimits(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{UI: UI{MaxImageBytes: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidUIConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("LOG_LEVEL", "info")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "file", b.configs[0].Storage.Backend)
	assert.Equal(t, "info", b.configs[0].Log.Level)
}

// TestWithEnv_SetsError_OnBadValue verifies that parse failures are recorded.
func TestWithEnv_SetsError_OnBadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("UI_MAX_IMAGE_BYTES", "big")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-b", "file"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "file", b.configs[0].Storage.Backend)
}

func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that no config is appended when
// none of the collected configs names a JSON file.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_PrependsConfig verifies that the JSON config is placed first
// so that env and flags override it.
func TestWithJSON_PrependsConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"backend": "file", "slot_key": "json-key"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage:      Storage{Backend: "sqlite"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "json-key", cfg.Storage.SlotKey)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing JSON file
// is reported as a builder error.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the flags path (collected last)
// wins over the env path.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.Version)
}

// TestWithJSON_DoesNotAppend_WhenErrorAlreadySet verifies that a builder in
// error state skips the JSON step.
func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	assert.Len(t, b.configs, 1)
}
