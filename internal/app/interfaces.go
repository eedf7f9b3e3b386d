// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package app

import (
	"context"

	"yatfs/pkg/types"
)

// ProgressDisplay renders the updates of one transfer
type ProgressDisplay interface {
	// StartUpdatingProgress blocks until progressCh is closed or ctx is done
	StartUpdatingProgress(ctx context.Context, progressCh <-chan types.ProgressUpdate)
}

// ProgressDisplayFactory creates a fresh display for every transfer
type ProgressDisplayFactory func() ProgressDisplay

// trackProgress runs a display for one transfer. Close the returned channel
// when the transfer ends, then call wait.
func trackProgress(ctx context.Context, newDisplay ProgressDisplayFactory) (chan types.ProgressUpdate, func()) {
	progressCh := make(chan types.ProgressUpdate, 16)
	done := make(chan struct{})

	go func() {
		defer close(done)
		newDisplay().StartUpdatingProgress(ctx, progressCh)
	}()

	return progressCh, func() { <-done }
}
