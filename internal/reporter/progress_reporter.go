package reporter

import (
	"context"
	"fmt"
	"io"
	"log"

	"yatfs/pkg/types"
)

// ProgressReporter prints one line per chunk, e.g. "Sent 1024/2500 bytes"
type ProgressReporter struct {
	out io.Writer
}

// NewProgressReporter creates a line-based progress reporter writing to out
func NewProgressReporter(out io.Writer) *ProgressReporter {
	return &ProgressReporter{out: out}
}

// StartUpdatingProgress consumes progressCh until it is closed or ctx is done
func (pr *ProgressReporter) StartUpdatingProgress(ctx context.Context, progressCh <-chan types.ProgressUpdate) {
	var totalSize int64
	var transferredBytes uint64

	for {
		select {
		case <-ctx.Done():
			log.Println("Progress reporting stopped: context cancelled")
			return
		case progress, ok := <-progressCh:
			if !ok {
				return
			}

			// First progress update contains metadata
			if progress.MetaData != nil {
				totalSize = progress.MetaData.Size
				if progress.Direction == types.Receiving {
					fmt.Fprintf(pr.out, "Receiving file: %s (%d bytes)\n", progress.MetaData.Name, totalSize)
				}
				continue
			}

			transferredBytes += progress.NewBytes
			fmt.Fprintf(pr.out, "%s %d/%d bytes\n", progress.Direction, transferredBytes, totalSize)
		}
	}
}

// Discard drains progress updates without printing anything
type Discard struct{}

// StartUpdatingProgress consumes progressCh until it is closed or ctx is done
func (Discard) StartUpdatingProgress(ctx context.Context, progressCh <-chan types.ProgressUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-progressCh:
			if !ok {
				return
			}
		}
	}
}
