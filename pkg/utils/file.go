package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists reports whether path names an existing file system entry
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ResolveDestinationDir validates the directory received files are written to
func ResolveDestinationDir(destDir string) (string, error) {
	if destDir == "" {
		return ".", nil
	}

	// Check if the path exists and is a directory
	if info, err := os.Stat(destDir); err == nil {
		if info.IsDir() {
			return destDir, nil
		}
		return "", fmt.Errorf("destination path '%s' exists but is not a directory", destDir)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("cannot access destination path: %w", err)
	}

	// Path doesn't exist - it is created on the first transfer as long as the parent exists
	dir := filepath.Dir(destDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("parent directory does not exist: %s", dir)
	}
	return destDir, nil
}

// FormatFileSize formats file size in human readable format
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
