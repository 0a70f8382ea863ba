// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		SlotKey string `json:"slot_key"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			SlotFile string `json:"slot_file"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	UI struct {
		Theme           string `json:"theme"`
		SearchCacheSize int    `json:"search_cache_size"`
		MaxImageBytes   int64  `json:"max_image_bytes"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			SlotKey: jsonCfg.Storage.SlotKey,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				SlotFile: jsonCfg.Storage.Files.SlotFile,
			},
		},
		Log: Log{
			FilePath: jsonCfg.Log.File,
			Level:    jsonCfg.Log.Level,
		},
		UI: UI{
			Theme:           jsonCfg.UI.Theme,
			SearchCacheSize: jsonCfg.UI.SearchCacheSize,
			MaxImageBytes:   jsonCfg.UI.MaxImageBytes,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
