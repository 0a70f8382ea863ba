// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants that do not depend on defaults. Values are checked only when
// set; [ClientConfig.validate] enforces the rest after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.UI.SearchCacheSize < 0 || cfg.UI.MaxImageBytes < 0 {
		return fmt.Errorf("%w: negative limits", ErrInvalidUIConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty sqlite dsn", ErrInvalidStorageConfigs)
		}
	case BackendFile:
		if cfg.Storage.Files.SlotFile == "" {
			return fmt.Errorf("%w: empty slot file", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Storage.SlotKey == "" {
		return fmt.Errorf("%w: empty slot key", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.UI.Theme != ThemeDark && cfg.UI.Theme != ThemeLight {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidUIConfigs, cfg.UI.Theme)
	}

	if cfg.UI.SearchCacheSize <= 0 || cfg.UI.MaxImageBytes <= 0 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidUIConfigs)
	}

	return nil
}
