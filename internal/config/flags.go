// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-b storage backend: sqlite or file
//	-d sqlite DSN
//	-f JSON slot file path
//	-k storage slot key
//	-c/-config json file path with configs
//	-log-file log file path
//	-log-level log level
//	-theme ui theme: dark or light
//	-version version label shown in the build info window
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		backend        string
		dsn            string
		slotFile       string
		slotKey        string
		jsonConfigPath string
		logFile        string
		logLevel       string
		theme          string
		version        string
	)

	fs := flag.NewFlagSet("memo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&backend, "b", "", "Storage backend (sqlite or file)")
	fs.StringVar(&dsn, "d", "", "SQLite DSN")
	fs.StringVar(&slotFile, "f", "", "JSON slot file path")
	fs.StringVar(&slotKey, "k", "", "Storage slot key")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&theme, "theme", "", "UI theme (dark or light)")
	fs.StringVar(&version, "version", "", "Version label")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			Backend: backend,
			SlotKey: slotKey,
			DB: DB{
				DSN: dsn,
			},
			Files: Files{
				SlotFile: slotFile,
			},
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		UI: UI{
			Theme: theme,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
