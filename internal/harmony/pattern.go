package harmony

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/colour"
)

// ErrUnknownPattern is returned for an unrecognised pattern name.
var ErrUnknownPattern = errors.New("unknown harmony pattern")

// Pattern names a harmony algorithm.
type Pattern string

const (
	PatternTriadic            Pattern = "triadic"
	PatternSplitComplementary Pattern = "split-complementary"
	PatternAnalogous          Pattern = "analogous"
	PatternMonochromatic      Pattern = "monochromatic"
	PatternSimilar            Pattern = "similar"
	PatternContrast           Pattern = "contrast"
	PatternClash              Pattern = "clash"
	PatternVivid              Pattern = "vivid"
	PatternMuted              Pattern = "muted"
	// PatternRandom is kept for older selections; it behaves like triadic.
	PatternRandom Pattern = "random"
)

type patternInfo struct {
	label       string
	description string
}

var patternTable = map[Pattern]patternInfo{
	PatternTriadic:            {"Balance", "Three bright colours in balanced harmony"},
	PatternSplitComplementary: {"Accent", "Distinctive colours that make the main colour stand out"},
	PatternAnalogous:          {"Gradient", "Gentle colours that flow naturally into each other"},
	PatternMonochromatic:      {"Same Family", "Calm, unified shades of one colour family"},
	PatternSimilar:            {"Natural", "Close, easy-going colours that blend together"},
	PatternContrast:           {"Contrast", "Clearly opposed colours with strong separation"},
	PatternClash:              {"Clash", "An opposite-extreme colour joined by a bridging tone"},
	PatternVivid:              {"Vivid", "Freeform high-contrast colours generated from the base"},
	PatternMuted:              {"Muted", "Freeform subdued colours generated from the base"},
	PatternRandom:             {"Random", "An unexpected combination"},
}

// Patterns returns the selectable patterns in display order. The legacy
// random pattern is accepted by ParsePattern but not listed.
func Patterns() []Pattern {
	return []Pattern{
		PatternTriadic,
		PatternSplitComplementary,
		PatternAnalogous,
		PatternMonochromatic,
		PatternSimilar,
		PatternContrast,
		PatternClash,
		PatternVivid,
		PatternMuted,
	}
}

// ParsePattern converts a name to a Pattern. Matching is case-insensitive.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := patternTable[p]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// String returns the pattern name.
func (p Pattern) String() string { return string(p) }

// Valid reports whether p is a known pattern.
func (p Pattern) Valid() bool {
	_, ok := patternTable[p]
	return ok
}

// Label returns the display name of the pattern, or the raw name if unknown.
func (p Pattern) Label() string {
	if info, ok := patternTable[p]; ok {
		return info.label
	}
	return string(p)
}

// Description returns a one-line description of the pattern.
func (p Pattern) Description() string {
	return patternTable[p].description
}

// Freeform reports whether the pattern generates colours outside the catalog.
func (p Pattern) Freeform() bool {
	return p == PatternVivid || p == PatternMuted
}

// TargetHues returns the two target hues for an angle-based pattern. The
// second result is false for patterns that are not driven by hue targets.
func TargetHues(p Pattern, base float64) ([2]float64, bool) {
	var offsets [2]float64
	switch p {
	case PatternTriadic, PatternRandom:
		offsets = [2]float64{120, 240}
	case PatternSplitComplementary:
		offsets = [2]float64{180 - 30, 180 + 30}
	case PatternAnalogous:
		offsets = [2]float64{-30, 30}
	case PatternSimilar:
		offsets = [2]float64{-15, 15}
	case PatternContrast:
		offsets = [2]float64{180, 90}
	default:
		return [2]float64{}, false
	}
	return [2]float64{
		colour.NormalizeHue(base + offsets[0]),
		colour.NormalizeHue(base + offsets[1]),
	}, true
}
