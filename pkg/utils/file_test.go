package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFileSize(t *testing.T) {
	var tests = []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{2500, "2.4 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 << 30, "3.0 GB"},
	}

	for _, test := range tests {
		if got := FormatFileSize(test.size); got != test.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", test.size, got, test.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("unable to create test file: %v", err)
	}

	var tests = []struct {
		path string
		want bool
	}{
		{file, true},
		{dir, true},
		{filepath.Join(dir, "absent.txt"), false},
	}

	for _, test := range tests {
		if got := FileExists(test.path); got != test.want {
			t.Errorf("FileExists(%s) = %v", test.path, got)
		}
	}
}

func TestResolveDestinationDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("unable to create test file: %v", err)
	}

	var tests = []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"", ".", false},
		{dir, dir, false},
		{filepath.Join(dir, "new"), filepath.Join(dir, "new"), false},
		{file, "", true},
		{filepath.Join(dir, "missing", "new"), "", true},
	}

	for _, test := range tests {
		got, err := ResolveDestinationDir(test.path)
		if (err != nil) != test.wantErr || got != test.want {
			t.Errorf("ResolveDestinationDir(%q) = %q, %v", test.path, got, err)
		}
	}
}
