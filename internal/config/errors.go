// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or an empty slot key).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidUIConfigs indicates invalid front end settings
	// (for example, an unknown theme or a non-positive image limit).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
