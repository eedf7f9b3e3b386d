// Package protocol implements the plaintext transfer header.
//
// A transfer is one header followed by a raw payload on the same stream:
//
//	<filename>,<filesize><payload bytes...>
//
// The header has no terminator and the payload has no framing beyond the
// declared size. No response is ever sent back to the sender.
package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"yatfs/pkg/types"
)

const separator = ','

var (
	ErrEmptyName    = errors.New("file name is empty")
	ErrCommaInName  = errors.New("file name must not contain a comma")
	ErrNegativeSize = errors.New("file size must not be negative")
	ErrMissingComma = errors.New("header has no comma separator")
	ErrInvalidSize  = errors.New("header size is not a non-negative integer")
	ErrUnsafeName   = errors.New("file name is not a plain base name")
)

// Encode serializes metadata as "name,size".
func Encode(meta types.FileMetadata) ([]byte, error) {
	if meta.Name == "" {
		return nil, ErrEmptyName
	}
	if strings.ContainsRune(meta.Name, separator) {
		return nil, fmt.Errorf("%w: %q", ErrCommaInName, meta.Name)
	}
	if meta.Size < 0 {
		return nil, ErrNegativeSize
	}

	header := make([]byte, 0, len(meta.Name)+21)
	header = append(header, meta.Name...)
	header = append(header, separator)
	header = strconv.AppendInt(header, meta.Size, 10)
	return header, nil
}

// Parse decodes a header from the first read of a connection.
//
// The name runs up to the first comma and the size is the run of ASCII
// digits that follows it. Whatever remains in buf belongs to the payload:
// the sender's header and first chunk may arrive in the same read.
func Parse(buf []byte) (types.FileMetadata, []byte, error) {
	idx := bytes.IndexByte(buf, separator)
	if idx < 0 {
		return types.FileMetadata{}, nil, ErrMissingComma
	}

	name := string(buf[:idx])
	rest := buf[idx+1:]

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return types.FileMetadata{}, nil, fmt.Errorf("%w: %q", ErrInvalidSize, truncate(rest, 32))
	}

	size, err := strconv.ParseInt(string(rest[:digits]), 10, 64)
	if err != nil {
		return types.FileMetadata{}, nil, fmt.Errorf("%w: %q", ErrInvalidSize, rest[:digits])
	}

	return types.FileMetadata{Name: name, Size: size}, rest[digits:], nil
}

// SanitizeName returns name if it is safe to use as a single path element
// inside the output directory.
func SanitizeName(name string) (string, error) {
	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	case filepath.Base(name) != name, filepath.IsAbs(name), filepath.VolumeName(name) != "":
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return name, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
