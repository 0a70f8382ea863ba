// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Slot is a named persistent location holding one serialized value.
// Writing a key overwrites any prior value.
type Slot interface {
	// Read returns the value stored under key, or [ErrSlotNotFound] when the
	// key was never written.
	Read(ctx context.Context, key string) (string, error)

	// Write stores value under key.
	Write(ctx context.Context, key, value string) error
}
