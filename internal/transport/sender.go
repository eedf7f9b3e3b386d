package transport

import (
	"context"
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

// Sender streams a local file to a receiver over a single TCP connection
type Sender struct {
	config      *config.Config
	fileService *processor.FileService
}

// NewSender creates a new file sender
func NewSender(cfg *config.Config, fileService *processor.FileService) *Sender {
	return &Sender{
		config:      cfg,
		fileService: fileService,
	}
}

// Send connects to the configured address, writes the header in one write
// and then the file in chunk-sized writes. No acknowledgement is awaited.
func (s *Sender) Send(ctx context.Context, filePath string, progressCh chan<- types.ProgressUpdate) (*Result, error) {
	id := uuid.NewString()

	reader, err := s.fileService.PrepareFileForReading(filePath, s.config.Transfer.ChunkSize)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	metadata := reader.Metadata()
	header, err := protocol.Encode(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}

	dialer := &net.Dialer{Timeout: s.config.Network.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.config.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", s.config.Address(), err)
	}
	defer conn.Close()

	stop := interruptOnCancel(ctx, conn)
	defer stop()

	log.Printf("[%s] Connected to server %s", id, conn.RemoteAddr())

	if _, err := conn.Write(header); err != nil {
		return nil, wrapIOError(ctx, "failed to send header", err)
	}

	reportProgress(ctx, progressCh, types.ProgressUpdate{
		TransferID: id,
		Direction:  types.Sending,
		MetaData:   &metadata,
	})

	result := &Result{
		TransferID: id,
		Name:       metadata.Name,
		Path:       filePath,
		Size:       metadata.Size,
	}
	start := time.Now()

	for {
		chunk, err := reader.NextChunk()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, err
		}

		n, err := conn.Write(chunk)
		result.Bytes += int64(n)
		if err != nil {
			return result, wrapIOError(ctx, "failed to send data", err)
		}
		result.Chunks++

		reportProgress(ctx, progressCh, types.ProgressUpdate{
			TransferID: id,
			Direction:  types.Sending,
			NewBytes:   uint64(n),
		})
	}

	result.Duration = time.Since(start)
	result.Complete = result.Bytes == result.Size
	log.Printf("[%s] File transfer complete: %d bytes sent in %d chunks", id, result.Bytes, result.Chunks)

	return result, nil
}
