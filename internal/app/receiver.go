package app

import (
	"context"
	"fmt"
	"log"
	"net"

	"yatfs/internal/config"
	"yatfs/internal/transport"
	"yatfs/internal/ui"
)

// ReceiverOptions configures the receiver application behavior
type ReceiverOptions struct {
	Listener net.Listener // Optional: bound from the configuration when nil
}

// ReceiverApp implements receiver application logic
type ReceiverApp struct {
	config     *config.Config
	receiver   *transport.Receiver
	ui         *ui.ConsoleUI
	newDisplay ProgressDisplayFactory
}

// NewReceiverApp creates a new receiver application
func NewReceiverApp(
	cfg *config.Config,
	receiver *transport.Receiver,
	ui *ui.ConsoleUI,
	newDisplay ProgressDisplayFactory,
) *ReceiverApp {
	return &ReceiverApp{
		config:     cfg,
		receiver:   receiver,
		ui:         ui,
		newDisplay: newDisplay,
	}
}

// Run listens and receives one file, or keeps receiving in keep-alive mode
// until ctx is cancelled.
func (r *ReceiverApp) Run(ctx context.Context, opts *ReceiverOptions) error {
	server := transport.NewServer(r.config, r.handleConnection)

	ln := opts.Listener
	if ln == nil {
		var err error
		if ln, err = server.Listen(); err != nil {
			return err
		}
	}

	r.ui.Println(fmt.Sprintf("Server is listening on %s", ln.Addr()))
	return server.Serve(ctx, ln)
}

// handleConnection receives a single transfer and reports its outcome
func (r *ReceiverApp) handleConnection(ctx context.Context, conn net.Conn) error {
	r.ui.Println(fmt.Sprintf("Connected by %s", conn.RemoteAddr()))

	progressCh, wait := trackProgress(ctx, r.newDisplay)
	result, err := r.receiver.Receive(ctx, conn, progressCh)
	close(progressCh)
	wait()

	if err != nil {
		return fmt.Errorf("failed to receive file: %w", err)
	}

	if !result.Complete {
		log.Printf("[%s] Warning: %s is incomplete (%d of %d bytes)", result.TransferID, result.Path, result.Bytes, result.Size)
	}
	r.ui.Println(fmt.Sprintf("File %s received successfully!", result.Name))
	return nil
}
