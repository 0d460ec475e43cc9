package compression

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"

	"github.com/jmylchreest/dyeharmony/internal/security"
	"github.com/ulikunitz/xz"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want Format
	}{
		{name: "xz extension", file: "dyes.json.xz", want: FormatXz},
		{name: "gz extension", file: "dyes.json.GZ", want: FormatGzip},
		{name: "bz2 extension", file: "dyes.json.bz2", want: FormatBzip2},
		{name: "xz magic", file: "dyes", data: []byte{0xFD, '7', 'z', 'X', 'Z', 0x00, 1}, want: FormatXz},
		{name: "gzip magic", file: "dyes", data: []byte{0x1F, 0x8B, 8}, want: FormatGzip},
		{name: "plain json", file: "dyes.json", data: []byte(`{"dyes":[]}`), want: FormatNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.file, tt.data); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecompressXz(t *testing.T) {
	payload := []byte(`{"dyes":[{"id":"a"}]}`)

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := Decompress("dyes.json.xz", buf.Bytes())
	if err != nil {
		t.Fatalf("Decompress() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decompress() = %q, want %q", got, payload)
	}
}

func TestDecompressGzip(t *testing.T) {
	payload := []byte("hello catalog")

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := Decompress("data", buf.Bytes())
	if err != nil {
		t.Fatalf("Decompress() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decompress() = %q, want %q", got, payload)
	}
}

func TestDecompressPassthrough(t *testing.T) {
	payload := []byte(`{"dyes":[]}`)
	got, err := Decompress("dyes.json", payload)
	if err != nil {
		t.Fatalf("Decompress() error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decompress() = %q, want unchanged", got)
	}
}

func TestDecompressCorrupt(t *testing.T) {
	if _, err := Decompress("dyes.json.xz", []byte("not xz at all")); err == nil {
		t.Error("expected error for corrupt xz data")
	}
}

func gzipBytes(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressSizeLimit(t *testing.T) {
	atLimit := bytes.Repeat([]byte{'a'}, MaxDecompressedSize)
	got, err := Decompress("data.gz", gzipBytes(t, atLimit))
	if err != nil {
		t.Fatalf("Decompress() at limit error: %v", err)
	}
	if len(got) != MaxDecompressedSize {
		t.Errorf("Decompress() returned %d bytes, want %d", len(got), MaxDecompressedSize)
	}

	over := append(atLimit, 'a')
	if _, err := Decompress("data.gz", gzipBytes(t, over)); !errors.Is(err, security.ErrSizeLimitExceeded) {
		t.Errorf("Decompress() over limit error = %v, want ErrSizeLimitExceeded", err)
	}
}
