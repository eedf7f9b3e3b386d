package transport

import (
	"context"
	"fmt"
	"time"
)

// interruptOnCancel unblocks pending I/O on conn once ctx is done.
// The returned function releases the watcher.
func interruptOnCancel(ctx context.Context, conn interface{ SetDeadline(time.Time) error }) func() bool {
	return context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
}

// wrapIOError prefers the context error when a cancellation caused the failure
func wrapIOError(ctx context.Context, msg string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", msg, ctxErr)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
