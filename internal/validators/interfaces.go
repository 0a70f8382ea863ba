// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks what the editor hands over before the session
// touches the memo list.
//
// Validators return sentinel errors from errors.go so callers can match them
// with errors.Is and show a short message to the user.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
