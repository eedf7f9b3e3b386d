package processor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"yatfs/pkg/types"
	"yatfs/pkg/utils"
)

// FileReader yields a file as fixed-size chunks. Every chunk but the last
// is exactly the configured chunk size.
type FileReader struct {
	file     *os.File
	metadata types.FileMetadata
	filePath string
	buffer   []byte
}

// PrepareFileForReading opens file and validates it's ready for reading
func (f *FileService) PrepareFileForReading(filePath string, chunkSize int) (*FileReader, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("invalid chunk size %d", chunkSize)
	}

	metadata, err := f.CreateFileMetadata(filePath)
	if err != nil {
		return nil, err
	}

	file, err := f.openReader(filePath)
	if err != nil {
		return nil, err
	}

	log.Printf("File prepared for reading: %s, size: %d bytes (%s)",
		filePath, metadata.Size, utils.FormatFileSize(metadata.Size))

	return &FileReader{
		file:     file,
		metadata: metadata,
		filePath: filePath,
		buffer:   make([]byte, chunkSize),
	}, nil
}

// Metadata returns the name and size captured when the file was opened
func (r *FileReader) Metadata() types.FileMetadata {
	return r.metadata
}

// NextChunk returns the next chunk of the file, or io.EOF once the file is
// exhausted. The returned slice is reused by the following call.
func (r *FileReader) NextChunk() ([]byte, error) {
	n, err := io.ReadFull(r.file, r.buffer)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return r.buffer[:n], nil
	case errors.Is(err, io.EOF):
		return nil, io.EOF
	case err != nil:
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return r.buffer[:n], nil
}

// Close closes the underlying file
func (r *FileReader) Close() error {
	return r.file.Close()
}
