// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidMemo = errors.New("memo not saved")

	ErrImageTooLarge = errors.New("image is too large")
	ErrNotAnImage    = errors.New("file is not an image")
)
