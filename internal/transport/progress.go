package transport

import (
	"context"
	"time"

	"yatfs/pkg/types"
)

// Result summarizes one finished (or abandoned) transfer
type Result struct {
	TransferID string
	Name       string        // Base name announced in the header
	Path       string        // Local path read from or written to
	Size       int64         // Declared size from the header
	Bytes      int64         // Payload bytes actually moved
	Chunks     int           // Number of chunk writes
	Complete   bool          // Bytes == Size
	Duration   time.Duration // Time spent streaming the payload
}

// reportProgress forwards an update unless progressCh is nil. It gives up
// when ctx is done so a stalled consumer cannot wedge the transfer.
func reportProgress(ctx context.Context, progressCh chan<- types.ProgressUpdate, update types.ProgressUpdate) {
	if progressCh == nil {
		return
	}
	select {
	case progressCh <- update:
	case <-ctx.Done():
	}
}
