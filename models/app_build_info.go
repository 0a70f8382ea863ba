// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build metadata the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo describes the running go-memo-keeper binary. It is printed on
// startup and shown on the about page. Unset values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo builds the info from values injected with -ldflags.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// WithVersion returns a copy reporting version, e.g. one set through
// APP_VERSION. An empty version keeps the linked one.
func (a AppBuildInfo) WithVersion(version string) AppBuildInfo {
	if version != "" {
		a.version = version
	}
	return a
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// String renders the one-line startup banner.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("go-memo-keeper %s (built %s, commit %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
