// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-memo-keeper/internal/query"
	"github.com/MKhiriev/go-memo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MemoService is what the front end drives. Every method is a discrete user
// action that runs to completion.
type MemoService interface {
	// New clears the editing reference so the next save creates a memo.
	New()

	// Open loads the memo with the given id for editing. A missing id leaves
	// the editing reference untouched and returns false.
	Open(ctx context.Context, id int64) (models.Memo, bool)

	// Editing returns the id of the memo being edited, if any.
	Editing() (int64, bool)

	// Save validates draft, applies it as one create or replace, and persists
	// the list once. Validation errors are returned before anything changes.
	Save(ctx context.Context, draft models.Draft) (models.Memo, error)

	// Delete removes the memo after confirm agrees. It reports whether the
	// user confirmed.
	Delete(ctx context.Context, id int64, confirm Confirmer) (bool, error)

	// View returns what the list shows for q.
	View(q query.Query) View
}

// Confirmer is the yes/no prompt asked before a memo is deleted.
type Confirmer interface {
	// Confirm blocks until the user answers and reports whether to proceed.
	Confirm(ctx context.Context, id int64) bool
}

// ImageLoader turns an image file into an embeddable data URL.
type ImageLoader interface {
	Load(ctx context.Context, path string) (string, error)
}
