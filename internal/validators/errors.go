// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMemo       = errors.New("enter a title or some content")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidFontSize = errors.New("font size must look like 16px")
	ErrInvalidID       = errors.New("invalid memo id")
)
