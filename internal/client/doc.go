// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It wires storage, the memo session and the terminal UI into a single
// process lifecycle.
package client
