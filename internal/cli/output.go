package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
)

const swatchWidth = 4

// swatch renders a colour block, or blanks when colour output is disabled.
func swatch(rgb colour.RGB) string {
	return colour.ColourPreview(rgb, swatchWidth)
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseRange parses "min,max" into a catalog range.
func parseRange(s string) (catalog.Range, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return catalog.Range{}, fmt.Errorf("invalid range %q: expected min,max", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return catalog.Range{}, fmt.Errorf("invalid range minimum %q: %w", parts[0], err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return catalog.Range{}, fmt.Errorf("invalid range maximum %q: %w", parts[1], err)
	}
	if lo > hi {
		return catalog.Range{}, fmt.Errorf("invalid range %q: minimum exceeds maximum", s)
	}
	return catalog.Range{Min: lo, Max: hi}, nil
}

// formatHSV renders an HSV triple compactly.
func formatHSV(hsv colour.HSV) string {
	return fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", hsv.H, hsv.S, hsv.V)
}
