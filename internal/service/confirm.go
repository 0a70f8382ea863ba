// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "context"

// Answer is a [Confirmer] with a fixed answer, for callers that already asked
// the user.
type Answer bool

func (a Answer) Confirm(context.Context, int64) bool {
	return bool(a)
}

// ConfirmFunc adapts a function to [Confirmer].
type ConfirmFunc func(ctx context.Context, id int64) bool

func (f ConfirmFunc) Confirm(ctx context.Context, id int64) bool {
	return f(ctx, id)
}
