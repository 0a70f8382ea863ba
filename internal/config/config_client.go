// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted in [Storage.Backend].
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Theme names accepted in [UI.Theme].
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Defaults applied by [GetClientConfig] to settings no source provided.
const (
	DefaultSlotKey         = "note_editor_with_images_v1"
	DefaultLogLevel        = "debug"
	DefaultSearchCacheSize = 256
	DefaultMaxImageBytes   = 5 << 20

	appDirName = "go-memo-keeper"
)

// ClientApp holds application-level settings.
type ClientApp struct {
	// Version overrides the linker-provided build version when non-empty.
	Version string
}

// ClientDB contains SQLite settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientFiles contains JSON file backend settings.
type ClientFiles struct {
	// SlotFile is the JSON file holding the slots.
	SlotFile string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// Backend is [BackendSQLite] or [BackendFile].
	Backend string
	// SlotKey names the slot holding the memo list.
	SlotKey string
	// DB holds SQLite settings.
	DB ClientDB
	// Files holds JSON file settings.
	Files ClientFiles
}

// ClientLog contains logging settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientUI contains front end settings.
type ClientUI struct {
	Theme           string
	SearchCacheSize int
	MaxImageBytes   int64
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Log     ClientLog
	UI      ClientUI
}

// GetClientConfig builds and validates the runtime config from the merged
// structured configuration and the command-line args.
//
// It loads the base config via [GetStructuredConfig], fills defaults for
// anything left unset, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg, defaultDataDir())

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig, dataDir string) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			Backend: valueOr(cfg.Storage.Backend, BackendSQLite),
			SlotKey: valueOr(cfg.Storage.SlotKey, DefaultSlotKey),
			DB: ClientDB{
				DSN: valueOr(cfg.Storage.DB.DSN, filepath.Join(dataDir, "memos.db")),
			},
			Files: ClientFiles{
				SlotFile: valueOr(cfg.Storage.Files.SlotFile, filepath.Join(dataDir, "memos.json")),
			},
		},
		Log: ClientLog{
			FilePath: valueOr(cfg.Log.FilePath, filepath.Join(dataDir, "memo.log")),
			Level:    valueOr(cfg.Log.Level, DefaultLogLevel),
		},
		UI: ClientUI{
			Theme:           valueOr(cfg.UI.Theme, ThemeDark),
			SearchCacheSize: cfg.UI.SearchCacheSize,
			MaxImageBytes:   cfg.UI.MaxImageBytes,
		},
	}

	if clientCfg.UI.SearchCacheSize == 0 {
		clientCfg.UI.SearchCacheSize = DefaultSearchCacheSize
	}
	if clientCfg.UI.MaxImageBytes == 0 {
		clientCfg.UI.MaxImageBytes = DefaultMaxImageBytes
	}

	return clientCfg
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(dir, appDirName)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
