package processor

import (
	"fmt"
	"os"
	"path/filepath"

	"yatfs/pkg/types"
)

// FileService handles basic file operations
type FileService struct{}

// NewFileService creates a new file service
func NewFileService() *FileService {
	return &FileService{}
}

// openReader opens a file for reading
func (f *FileService) openReader(filePath string) (*os.File, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// createWriter creates (or truncates) a file for writing
func (f *FileService) createWriter(destPath string) (*os.File, error) {
	file, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

// ensureDir creates directory if it doesn't exist
func (f *FileService) ensureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// CreateFileMetadata describes a regular file for the transfer header
func (f *FileService) CreateFileMetadata(filePath string) (types.FileMetadata, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return types.FileMetadata{}, fmt.Errorf("failed to get file info: %w", err)
	}
	if !stat.Mode().IsRegular() {
		return types.FileMetadata{}, fmt.Errorf("%s is not a regular file", filePath)
	}

	return types.FileMetadata{
		Name: filepath.Base(filePath),
		Size: stat.Size(),
	}, nil
}

// OutputPath returns where a received file with the given name is stored
func (f *FileService) OutputPath(destDir, prefix, name string) string {
	return filepath.Join(destDir, prefix+name)
}
