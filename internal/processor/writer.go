package processor

import (
	"fmt"
	"log"
	"os"

	"yatfs/pkg/types"
)

// FileWriter wraps an open output file for receiving
type FileWriter struct {
	file              *os.File
	destPath          string
	totalBytesWritten uint64
	chunks            int
	metadata          types.FileMetadata // Metadata of the file being received
}

// PrepareFileForWriting creates destDir/prefix+name, overwriting any
// existing file. name must already be sanitized.
func (f *FileService) PrepareFileForWriting(destDir, prefix string, metadata types.FileMetadata) (*FileWriter, error) {
	if err := f.ensureDir(destDir); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	destPath := f.OutputPath(destDir, prefix, metadata.Name)

	file, err := f.createWriter(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	log.Printf("File prepared for writing: %s (original: %s, size: %d bytes)",
		destPath, metadata.Name, metadata.Size)

	return &FileWriter{
		file:     file,
		destPath: destPath,
		metadata: metadata,
	}, nil
}

// WriteChunk appends data to the output file
func (w *FileWriter) WriteChunk(data []byte) error {
	n, err := w.file.Write(data)
	w.totalBytesWritten += uint64(n)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	w.chunks++
	return nil
}

// Path returns the output file path
func (w *FileWriter) Path() string {
	return w.destPath
}

// BytesWritten returns the total number of bytes written so far
func (w *FileWriter) BytesWritten() uint64 {
	return w.totalBytesWritten
}

// Chunks returns how many chunks have been written
func (w *FileWriter) Chunks() int {
	return w.chunks
}

// Remaining returns how many declared bytes have not arrived yet
func (w *FileWriter) Remaining() int64 {
	return w.metadata.Size - int64(w.totalBytesWritten)
}

// Finish closes the output file and returns total bytes written
func (w *FileWriter) Finish() (uint64, error) {
	if err := w.file.Close(); err != nil {
		return w.totalBytesWritten, fmt.Errorf("failed to close file: %w", err)
	}

	log.Printf("File writing completed: %s, %d bytes written", w.destPath, w.totalBytesWritten)
	return w.totalBytesWritten, nil
}
