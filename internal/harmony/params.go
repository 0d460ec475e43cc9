package harmony

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidParams is returned when a parameter set fails validation.
var ErrInvalidParams = errors.New("invalid generator parameters")

// Span is a closed interval of hue offsets in degrees. Negative bounds are
// allowed for offsets that rotate backwards.
type Span struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Width returns Max - Min.
func (s Span) Width() float64 { return s.Max - s.Min }

// Delta is a chroma/lightness adjustment pair.
type Delta struct {
	Chroma    float64 `toml:"chroma"`
	Lightness float64 `toml:"lightness"`
}

// Reduction scales down chroma above the high chroma threshold:
// delta = Base - (C - threshold) * Factor.
type Reduction struct {
	Base      float64 `toml:"base"`
	Factor    float64 `toml:"factor"`
	Lightness float64 `toml:"lightness"`
}

// ChromaParams bounds the chroma of generated colours.
type ChromaParams struct {
	VividMax    float64 `toml:"vivid_max"`
	MutedMax    float64 `toml:"muted_max"`
	Low         float64 `toml:"low"`
	MutedTarget float64 `toml:"muted_target"`
}

// LightnessParams holds the Oklab lightness thresholds.
type LightnessParams struct {
	Low      float64 `toml:"low"`
	High     float64 `toml:"high"`
	VeryLow  float64 `toml:"very_low"`
	UpperMid float64 `toml:"upper_mid"`
	LowerMid float64 `toml:"lower_mid"`
	Middle   float64 `toml:"middle"`
	MutedMin float64 `toml:"muted_min"`
	MutedMax float64 `toml:"muted_max"`
}

// HueParams holds the hue offset windows used by the samplers.
type HueParams struct {
	Complementary  Span `toml:"complementary"`
	TriadicFirst   Span `toml:"triadic_first"`
	TriadicSecond  Span `toml:"triadic_second"`
	Analogous      Span `toml:"analogous"`
	MediumDistance Span `toml:"medium_distance"`
	Opposite       Span `toml:"opposite"`
}

// AdjustmentParams holds step sizes, damping factors and iteration caps.
type AdjustmentParams struct {
	ContrastStep      float64 `toml:"contrast_step"`
	ChromaReduction   float64 `toml:"chroma_reduction"`
	BridgePosition    float64 `toml:"bridge_position"`
	MaxTries          int     `toml:"max_tries"`
	MaxRetries        int     `toml:"max_retries"`
	FinalChromaFactor float64 `toml:"final_chroma_factor"`
}

// ProbabilityParams weights the hue offset samplers.
type ProbabilityParams struct {
	Complementary  float64 `toml:"complementary"`
	Triadic        float64 `toml:"triadic"`
	Analogous      float64 `toml:"analogous"`
	MediumDistance float64 `toml:"medium_distance"`
}

// VividDeltas are the adaptive adjustments for vivid palettes.
type VividDeltas struct {
	Extreme    Delta     `toml:"extreme"`
	High       Delta     `toml:"high"`
	Standard   Delta     `toml:"standard"`
	HighChroma Reduction `toml:"high_chroma"`
}

// MutedDeltas are the adaptive adjustments for muted palettes.
type MutedDeltas struct {
	Standard   Delta     `toml:"standard"`
	Low        Delta     `toml:"low"`
	Balance    Delta     `toml:"balance"`
	HighChroma Reduction `toml:"high_chroma"`
}

// BridgeSearch configures the muted bridge candidate search.
type BridgeSearch struct {
	HueStep           float64    `toml:"hue_step"`
	LightnessFactors  [3]float64 `toml:"lightness_factors"`
	ChromaFactors     [3]float64 `toml:"chroma_factors"`
	RandomSamples     int        `toml:"random_samples"`
	RandomLightness   Span       `toml:"random_lightness"`
	RandomChromaScale Span       `toml:"random_chroma_scale"`
}

// Params is the complete tuning table of the vivid/muted generator. It is a
// plain value: copies are independent and nothing mutates it at runtime.
type Params struct {
	HueOffsetRange  HueRange          `toml:"hue_offset_range"`
	MinContrastOnBg float64           `toml:"min_contrast_on_bg"`
	LowChroma       float64           `toml:"low_chroma"`
	HighChroma      float64           `toml:"high_chroma"`
	Chroma          ChromaParams      `toml:"chroma"`
	Lightness       LightnessParams   `toml:"lightness"`
	Hue             HueParams         `toml:"hue"`
	Adjustment      AdjustmentParams  `toml:"adjustment"`
	Probability     ProbabilityParams `toml:"probability"`
	Vivid           VividDeltas       `toml:"vivid"`
	Muted           MutedDeltas       `toml:"muted"`
	Bridge          BridgeSearch      `toml:"bridge"`
}

// DefaultParams returns the built-in parameter table.
func DefaultParams() Params {
	return Params{
		HueOffsetRange:  FullHueRange(),
		MinContrastOnBg: 1.8,
		LowChroma:       0.08,
		HighChroma:      0.25,
		Chroma: ChromaParams{
			VividMax:    0.37,
			MutedMax:    0.125,
			Low:         0.05,
			MutedTarget: 0.15,
		},
		Lightness: LightnessParams{
			Low:      0.2,
			High:     0.8,
			VeryLow:  0.35,
			UpperMid: 0.6,
			LowerMid: 0.4,
			Middle:   0.5,
			MutedMin: 0.3,
			MutedMax: 0.7,
		},
		Hue: HueParams{
			Complementary:  Span{Min: 150, Max: 210},
			TriadicFirst:   Span{Min: 100, Max: 140},
			TriadicSecond:  Span{Min: 220, Max: 260},
			Analogous:      Span{Min: -30, Max: 30},
			MediumDistance: Span{Min: 60, Max: 120},
			Opposite:       Span{Min: -120, Max: -60},
		},
		Adjustment: AdjustmentParams{
			ContrastStep:      0.06,
			ChromaReduction:   0.85,
			BridgePosition:    0.382,
			MaxTries:          6,
			MaxRetries:        8,
			FinalChromaFactor: 0.85,
		},
		Probability: ProbabilityParams{
			Complementary:  0.3,
			Triadic:        0.2,
			Analogous:      0.25,
			MediumDistance: 0.25,
		},
		Vivid: VividDeltas{
			Extreme:    Delta{Chroma: 0.25, Lightness: 0.5},
			High:       Delta{Chroma: 0.22, Lightness: 0.35},
			Standard:   Delta{Chroma: 0.15, Lightness: 0.25},
			HighChroma: Reduction{Base: -0.05, Factor: 0.3},
		},
		Muted: MutedDeltas{
			Standard:   Delta{Chroma: 0.12, Lightness: 0.25},
			Low:        Delta{Chroma: 0.1, Lightness: 0.15},
			Balance:    Delta{Chroma: -0.08, Lightness: 0.04},
			HighChroma: Reduction{Base: -0.15, Factor: 0.4, Lightness: 0.03},
		},
		Bridge: BridgeSearch{
			HueStep:           30,
			LightnessFactors:  [3]float64{0.4, 0.6, 0.8},
			ChromaFactors:     [3]float64{0.3, 0.5, 0.7},
			RandomSamples:     20,
			RandomLightness:   Span{Min: 0.35, Max: 0.70},
			RandomChromaScale: Span{Min: 0.2, Max: 0.7},
		},
	}
}

// LoadParams reads a TOML file and overlays it onto DefaultParams. Keys not
// present in the file keep their default. Unknown keys are rejected.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return p, fmt.Errorf("failed to read params file: %w", err)
	}

	md, err := toml.Decode(string(content), &p)
	if err != nil {
		return DefaultParams(), fmt.Errorf("failed to parse params file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return DefaultParams(), fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidParams, path, strings.Join(keys, ", "))
	}

	if err := p.Validate(); err != nil {
		return DefaultParams(), err
	}
	return p, nil
}

// Validate checks that the parameters describe a usable generator.
func (p Params) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(p.HueOffsetRange.Valid(), "hue_offset_range must satisfy 0 <= min <= max <= 360")
	check(p.MinContrastOnBg >= 1 && p.MinContrastOnBg <= 21, "min_contrast_on_bg must be within [1, 21]")
	check(p.LowChroma <= p.HighChroma, "low_chroma must not exceed high_chroma")
	check(p.Chroma.VividMax > 0 && p.Chroma.MutedMax > 0, "chroma maxima must be positive")
	check(p.Lightness.MutedMin <= p.Lightness.MutedMax, "lightness.muted_min must not exceed lightness.muted_max")
	check(p.Adjustment.ContrastStep > 0, "adjustment.contrast_step must be positive")
	check(p.Adjustment.BridgePosition >= 0 && p.Adjustment.BridgePosition <= 1, "adjustment.bridge_position must be within [0, 1]")
	check(p.Adjustment.MaxTries >= 0 && p.Adjustment.MaxRetries >= 0, "adjustment iteration caps must not be negative")
	check(p.Probability.Complementary >= 0 && p.Probability.Triadic >= 0 &&
		p.Probability.Complementary+p.Probability.Triadic <= 1,
		"vivid probabilities must be non-negative and sum to at most 1")
	check(p.Probability.Analogous >= 0 && p.Probability.MediumDistance >= 0 &&
		p.Probability.Analogous+p.Probability.MediumDistance <= 1,
		"muted probabilities must be non-negative and sum to at most 1")
	check(p.Bridge.HueStep > 0, "bridge.hue_step must be positive")
	check(p.Bridge.RandomSamples >= 0, "bridge.random_samples must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return nil
}
