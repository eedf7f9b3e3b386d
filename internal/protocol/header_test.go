package protocol

import (
	"bytes"
	"errors"
	"testing"

	"yatfs/pkg/types"
)

func TestEncode(t *testing.T) {
	var tests = []struct {
		meta types.FileMetadata
		want string
		err  error
	}{
		{types.FileMetadata{Name: "empty.txt", Size: 0}, "empty.txt,0", nil},
		{types.FileMetadata{Name: "a.bin", Size: 2500}, "a.bin,2500", nil},
		{types.FileMetadata{Name: "ünïcode.txt", Size: 7}, "ünïcode.txt,7", nil},
		{types.FileMetadata{Name: "", Size: 1}, "", ErrEmptyName},
		{types.FileMetadata{Name: "a,b.txt", Size: 1}, "", ErrCommaInName},
		{types.FileMetadata{Name: "neg", Size: -1}, "", ErrNegativeSize},
	}

	for _, test := range tests {
		got, err := Encode(test.meta)
		if !errors.Is(err, test.err) {
			t.Errorf("Encode(%v) error = %v, want %v", test.meta, err, test.err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Encode(%v) = %q, want %q", test.meta, got, test.want)
		}
	}
}

func TestParse(t *testing.T) {
	var tests = []struct {
		input     string
		want      types.FileMetadata
		carryOver string
		err       error
	}{
		{"empty.txt,0", types.FileMetadata{Name: "empty.txt", Size: 0}, "", nil},
		{"a.bin,2500", types.FileMetadata{Name: "a.bin", Size: 2500}, "", nil},
		{"a.bin,5hello", types.FileMetadata{Name: "a.bin", Size: 5}, "hello", nil},
		{"noseparator", types.FileMetadata{}, "", ErrMissingComma},
		{"a.bin,", types.FileMetadata{}, "", ErrInvalidSize},
		{"a.bin,-3", types.FileMetadata{}, "", ErrInvalidSize},
		{"a.bin,abc", types.FileMetadata{}, "", ErrInvalidSize},
		{"a,b.txt,10", types.FileMetadata{}, "", ErrInvalidSize},
		{"big,99999999999999999999", types.FileMetadata{}, "", ErrInvalidSize},
	}

	for _, test := range tests {
		got, rest, err := Parse([]byte(test.input))
		if !errors.Is(err, test.err) {
			t.Errorf("Parse(%q) error = %v, want %v", test.input, err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.input, got, test.want)
		}
		if string(rest) != test.carryOver {
			t.Errorf("Parse(%q) carry-over = %q, want %q", test.input, rest, test.carryOver)
		}
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	names := []string{"x", "report.pdf", "with space.txt", ".hidden", "日本語.md"}
	sizes := []int64{0, 1, 1023, 1024, 1025, 2500, 1 << 40}

	for _, name := range names {
		for _, size := range sizes {
			meta := types.FileMetadata{Name: name, Size: size}
			encoded, err := Encode(meta)
			if err != nil {
				t.Fatalf("Encode(%v) error: %v", meta, err)
			}
			decoded, rest, err := Parse(encoded)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", encoded, err)
			}
			if decoded != meta || len(rest) != 0 {
				t.Errorf("round trip of %v = %v (carry-over %q)", meta, decoded, rest)
			}
		}
	}
}

func TestParseKeepsPayloadBytes(t *testing.T) {
	payload := []byte{'\x00', 0xff, 'z', '\n'}
	buf := append([]byte("blob.bin,4"), payload...)

	meta, rest, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if meta.Size != 4 || !bytes.Equal(rest, payload) {
		t.Errorf("Parse = %v, carry-over %v", meta, rest)
	}
}

func TestSanitizeName(t *testing.T) {
	var tests = []struct {
		name string
		ok   bool
	}{
		{"file.txt", true},
		{".hidden", true},
		{"with space", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../etc/passwd", false},
		{"dir/file", false},
		{`dir\file`, false},
		{"/abs", false},
		{"nul\x00byte", false},
	}

	for _, test := range tests {
		got, err := SanitizeName(test.name)
		if test.ok {
			if err != nil || got != test.name {
				t.Errorf("SanitizeName(%q) = %q, %v", test.name, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrUnsafeName) {
			t.Errorf("SanitizeName(%q) error = %v, want %v", test.name, err, ErrUnsafeName)
		}
	}
}
