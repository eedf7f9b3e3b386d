package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"yatfs/pkg/types"
	"yatfs/pkg/utils"

	"github.com/schollz/progressbar/v3"
)

// ProgressUI renders transfer progress as a progress bar
type ProgressUI struct {
	out          io.Writer
	bar          *progressbar.ProgressBar
	operation    string
	filename     string
	totalBytes   int64
	currentBytes int64
	startTime    time.Time
}

// NewProgressUI creates a new progress bar UI writing to out
func NewProgressUI(out io.Writer) *ProgressUI {
	return &ProgressUI{out: out}
}

// StartUpdatingProgress consumes progressCh until it is closed or ctx is done
func (p *ProgressUI) StartUpdatingProgress(ctx context.Context, progressCh <-chan types.ProgressUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-progressCh:
			if !ok {
				p.completeProgress()
				return
			}
			p.updateProgress(update)
		}
	}
}

// startProgress initializes the progress bar for a file transfer
func (p *ProgressUI) startProgress(update types.ProgressUpdate) {
	p.operation = "Sending"
	if update.Direction == types.Receiving {
		p.operation = "Receiving"
	}
	p.filename = update.MetaData.Name
	p.totalBytes = update.MetaData.Size
	p.startTime = time.Now()

	// an empty file renders as a spinner rather than a 0-byte bar
	barMax := p.totalBytes
	if barMax <= 0 {
		barMax = -1
	}

	p.bar = progressbar.NewOptions64(barMax,
		progressbar.OptionSetDescription(fmt.Sprintf("%s %s", p.operation, p.filename)),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
}

// updateProgress updates the progress bar with current transfer state
func (p *ProgressUI) updateProgress(update types.ProgressUpdate) {
	if update.MetaData != nil {
		p.startProgress(update)
		return
	}
	if p.bar == nil {
		return
	}

	p.currentBytes += int64(update.NewBytes)
	_ = p.bar.Set64(p.currentBytes)

	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 {
		throughput := float64(p.currentBytes) / elapsed / (1024 * 1024) // MB/s
		p.bar.Describe(fmt.Sprintf("%s %s (%s/%s, %.1f MB/s)", p.operation, p.filename,
			utils.FormatFileSize(p.currentBytes), utils.FormatFileSize(p.totalBytes), throughput))
	}
}

// completeProgress marks the progress as complete and prints a summary
func (p *ProgressUI) completeProgress() {
	if p.bar == nil {
		return
	}
	if p.currentBytes >= p.totalBytes {
		_ = p.bar.Finish()
	}

	percentage := 100.0
	if p.totalBytes > 0 {
		percentage = float64(p.currentBytes) / float64(p.totalBytes) * 100.0
	}

	fmt.Fprintf(p.out, "\n=============================================\n")
	fmt.Fprintf(p.out, "+ File: %s\n", p.filename)
	fmt.Fprintf(p.out, "+ Total bytes: %s\n", utils.FormatFileSize(p.currentBytes))
	fmt.Fprintf(p.out, "+ Transfer time: %s\n", time.Since(p.startTime).Round(time.Millisecond))
	fmt.Fprintf(p.out, "+ Completion: %.1f%%\n", percentage)
	fmt.Fprintf(p.out, "=============================================\n")
}
