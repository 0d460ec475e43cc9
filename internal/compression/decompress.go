// Package compression provides transparent decompression of catalog data.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/security"
	"github.com/ulikunitz/xz"
)

// MaxDecompressedSize bounds the output of a single decompression.
const MaxDecompressedSize = 32 * 1024 * 1024

// Format identifies a supported compression container.
type Format string

const (
	FormatNone  Format = ""
	FormatXz    Format = "xz"
	FormatGzip  Format = "gzip"
	FormatBzip2 Format = "bzip2"
)

var (
	xzMagic    = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	gzipMagic  = []byte{0x1F, 0x8B}
	bzip2Magic = []byte{'B', 'Z', 'h'}
)

// DetectFormat determines the compression format from the name's extension,
// falling back to the leading magic bytes of data.
func DetectFormat(name string, data []byte) Format {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		return FormatXz
	case strings.HasSuffix(lower, ".gz"):
		return FormatGzip
	case strings.HasSuffix(lower, ".bz2"):
		return FormatBzip2
	}

	switch {
	case bytes.HasPrefix(data, xzMagic):
		return FormatXz
	case bytes.HasPrefix(data, gzipMagic):
		return FormatGzip
	case bytes.HasPrefix(data, bzip2Magic):
		return FormatBzip2
	}
	return FormatNone
}

// Decompress returns the decompressed content of data. Uncompressed input is
// returned unchanged.
func Decompress(name string, data []byte) ([]byte, error) {
	var r io.Reader
	switch DetectFormat(name, data) {
	case FormatXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case FormatGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case FormatBzip2:
		r = bzip2.NewReader(bytes.NewReader(data))
	default:
		return data, nil
	}

	out, err := io.ReadAll(security.NewLimitedReader(r, MaxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", name, err)
	}
	return out, nil
}
