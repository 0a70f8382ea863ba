// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-memo-keeper/internal/service"
	"github.com/MKhiriev/go-memo-keeper/internal/store"
	"github.com/MKhiriev/go-memo-keeper/internal/validators"
)

// humanizeError turns service errors into short status lines.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyMemo):
		return "Enter a title or some content."
	case errors.Is(err, validators.ErrInvalidDate):
		return "Date must look like 2024-05-01."
	case errors.Is(err, validators.ErrInvalidFontSize):
		return "Unsupported font size."
	case errors.Is(err, store.ErrSlotUnreadable):
		return "Saved memos could not be read, so changes are not written. Restart to retry."
	case errors.Is(err, service.ErrImageTooLarge):
		return "Image is too large."
	case errors.Is(err, service.ErrNotAnImage):
		return "That file is not an image."
	}
	return err.Error()
}
