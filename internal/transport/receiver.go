package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	"yatfs/internal/config"
	"yatfs/internal/processor"
	"yatfs/internal/protocol"
	"yatfs/pkg/types"

	"github.com/google/uuid"
)

var (
	ErrNoHeader   = errors.New("connection closed before a header arrived")
	ErrIncomplete = errors.New("peer closed the connection before the declared size was received")
)

// Receiver reads one header and payload from a connection into a file
type Receiver struct {
	config      *config.Config
	fileService *processor.FileService
}

// NewReceiver creates a new file receiver
func NewReceiver(cfg *config.Config, fileService *processor.FileService) *Receiver {
	return &Receiver{
		config:      cfg,
		fileService: fileService,
	}
}

// Receive handles a single transfer on conn. The header must arrive in the
// first read. The payload is read until the declared size is reached or the
// peer closes the connection; in the latter case the partial file is kept
// and Result.Complete is false. ErrIncomplete is only returned in strict mode.
func (r *Receiver) Receive(ctx context.Context, conn net.Conn, progressCh chan<- types.ProgressUpdate) (*Result, error) {
	id := uuid.NewString()

	stop := interruptOnCancel(ctx, conn)
	defer stop()

	headerBuf := make([]byte, r.config.Transfer.HeaderBufferSize)
	n, err := conn.Read(headerBuf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, wrapIOError(ctx, "failed to read header", err)
	}

	metadata, carryOver, err := protocol.Parse(headerBuf[:n])
	if err != nil {
		return nil, fmt.Errorf("malformed header from %s: %w", conn.RemoteAddr(), err)
	}
	if metadata.Name, err = protocol.SanitizeName(metadata.Name); err != nil {
		return nil, fmt.Errorf("rejected header from %s: %w", conn.RemoteAddr(), err)
	}

	log.Printf("[%s] Receiving file: %s (%d bytes) from %s", id, metadata.Name, metadata.Size, conn.RemoteAddr())

	writer, err := r.fileService.PrepareFileForWriting(r.config.Transfer.OutputDir, r.config.Transfer.OutputPrefix, metadata)
	if err != nil {
		return nil, err
	}

	reportProgress(ctx, progressCh, types.ProgressUpdate{
		TransferID: id,
		Direction:  types.Receiving,
		MetaData:   &metadata,
	})

	result := &Result{
		TransferID: id,
		Name:       metadata.Name,
		Path:       writer.Path(),
		Size:       metadata.Size,
	}
	start := time.Now()

	streamErr := r.stream(ctx, conn, writer, carryOver, id, progressCh)

	written, closeErr := writer.Finish()
	result.Bytes = int64(written)
	result.Chunks = writer.Chunks()
	result.Duration = time.Since(start)
	result.Complete = result.Bytes == result.Size

	if streamErr != nil {
		return result, streamErr
	}
	if closeErr != nil {
		return result, closeErr
	}

	if !result.Complete {
		log.Printf("[%s] Peer closed early: received %d of %d bytes", id, result.Bytes, result.Size)
		if r.config.Transfer.Strict {
			return result, fmt.Errorf("%w: received %d of %d bytes", ErrIncomplete, result.Bytes, result.Size)
		}
	}

	return result, nil
}

// stream copies the payload into writer. A clean EOF before the declared
// size ends the transfer without an error.
func (r *Receiver) stream(ctx context.Context, conn net.Conn, writer *processor.FileWriter, carryOver []byte, id string, progressCh chan<- types.ProgressUpdate) error {
	write := func(chunk []byte) error {
		if err := writer.WriteChunk(chunk); err != nil {
			return err
		}
		reportProgress(ctx, progressCh, types.ProgressUpdate{
			TransferID: id,
			Direction:  types.Receiving,
			NewBytes:   uint64(len(chunk)),
		})
		return nil
	}

	// bytes that rode along with the header, never more than declared
	if int64(len(carryOver)) > writer.Remaining() {
		carryOver = carryOver[:writer.Remaining()]
	}
	if len(carryOver) > 0 {
		if err := write(carryOver); err != nil {
			return err
		}
	}

	buffer := make([]byte, r.config.Transfer.ChunkSize)
	for writer.Remaining() > 0 {
		want := len(buffer)
		if remaining := writer.Remaining(); remaining < int64(want) {
			want = int(remaining)
		}

		n, err := conn.Read(buffer[:want])
		if n > 0 {
			if werr := write(buffer[:n]); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return wrapIOError(ctx, "failed to receive data", err)
		}
	}
	return nil
}
