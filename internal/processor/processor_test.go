package processor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"yatfs/pkg/types"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unable to create test file: %v", err)
	}
	return path
}

func TestCreateFileMetadata(t *testing.T) {
	files := NewFileService()
	path := writeTempFile(t, "a.bin", make([]byte, 2500))

	meta, err := files.CreateFileMetadata(path)
	if err != nil {
		t.Fatalf("CreateFileMetadata(%s) error: %v", path, err)
	}
	if meta != (types.FileMetadata{Name: "a.bin", Size: 2500}) {
		t.Errorf("CreateFileMetadata(%s) = %v", path, meta)
	}

	if _, err := files.CreateFileMetadata(t.TempDir()); err == nil {
		t.Errorf("CreateFileMetadata(dir) expected an error")
	}
	if _, err := files.CreateFileMetadata(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("CreateFileMetadata(missing) error = %v, want ErrNotExist", err)
	}
}

func TestFileReaderChunks(t *testing.T) {
	var tests = []struct {
		size      int
		chunkSize int
		want      []int
	}{
		{0, 1024, nil},
		{1, 1024, []int{1}},
		{1024, 1024, []int{1024}},
		{2500, 1024, []int{1024, 1024, 452}},
		{10, 3, []int{3, 3, 3, 1}},
	}

	files := NewFileService()
	for _, test := range tests {
		data := bytes.Repeat([]byte{'x'}, test.size)
		path := writeTempFile(t, "chunks.bin", data)

		reader, err := files.PrepareFileForReading(path, test.chunkSize)
		if err != nil {
			t.Fatalf("PrepareFileForReading error: %v", err)
		}

		var got []int
		var total []byte
		for {
			chunk, err := reader.NextChunk()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("NextChunk error: %v", err)
			}
			got = append(got, len(chunk))
			total = append(total, chunk...)
		}
		reader.Close()

		if len(got) != len(test.want) {
			t.Errorf("size %d/%d: chunks = %v, want %v", test.size, test.chunkSize, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("size %d/%d: chunks = %v, want %v", test.size, test.chunkSize, got, test.want)
				break
			}
		}
		if !bytes.Equal(total, data) {
			t.Errorf("size %d: reassembled data differs", test.size)
		}
	}
}

func TestPrepareFileForReadingInvalidChunk(t *testing.T) {
	path := writeTempFile(t, "f", []byte("abc"))
	if _, err := NewFileService().PrepareFileForReading(path, 0); err == nil {
		t.Errorf("PrepareFileForReading(chunk=0) expected an error")
	}
}

func TestFileWriter(t *testing.T) {
	files := NewFileService()
	dir := filepath.Join(t.TempDir(), "nested", "out")
	meta := types.FileMetadata{Name: "doc.txt", Size: 11}

	// an existing file is overwritten without warning
	if err := files.ensureDir(dir); err != nil {
		t.Fatalf("ensureDir error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "received_doc.txt"), []byte("stale content here"), 0644); err != nil {
		t.Fatalf("unable to seed output file: %v", err)
	}

	writer, err := files.PrepareFileForWriting(dir, "received_", meta)
	if err != nil {
		t.Fatalf("PrepareFileForWriting error: %v", err)
	}
	if writer.Path() != filepath.Join(dir, "received_doc.txt") {
		t.Errorf("Path() = %s", writer.Path())
	}

	for _, chunk := range []string{"hello", " ", "world"} {
		if err := writer.WriteChunk([]byte(chunk)); err != nil {
			t.Fatalf("WriteChunk error: %v", err)
		}
	}
	if writer.Remaining() != 0 || writer.Chunks() != 3 {
		t.Errorf("Remaining() = %d, Chunks() = %d", writer.Remaining(), writer.Chunks())
	}

	total, err := writer.Finish()
	if err != nil || total != 11 {
		t.Fatalf("Finish() = %d, %v", total, err)
	}

	got, err := os.ReadFile(writer.Path())
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("output = %q", got)
	}
}
