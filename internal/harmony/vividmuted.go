package harmony

import (
	"fmt"
	"math"

	"github.com/jmylchreest/dyeharmony/internal/colour"
)

// DefaultBackground is the background used for the contrast nudge.
const DefaultBackground = "#FFFFFF"

// HueRange restricts the hue offset of the adventure colour, in degrees.
type HueRange struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// FullHueRange returns the unrestricted range [0, 360].
func FullHueRange() HueRange {
	return HueRange{Min: 0, Max: 360}
}

// IsFull reports whether r imposes no restriction.
func (r HueRange) IsFull() bool {
	return r.Min == 0 && r.Max == 360
}

// Valid reports whether r lies within [0, 360] with Min <= Max.
func (r HueRange) Valid() bool {
	return r.Min >= 0 && r.Max <= 360 && r.Min <= r.Max
}

// VividOptions are per-call options of the vivid/muted generator.
type VividOptions struct {
	// Background is the hex colour generated colours must contrast with.
	// Empty means DefaultBackground.
	Background string
	// HueOffsetRange overrides Params.HueOffsetRange when set.
	HueOffsetRange *HueRange
}

// Triple is a generated palette: the base colour and two freeform colours.
type Triple struct {
	Base      string `json:"base"`
	Bridge    string `json:"bridge"`
	Adventure string `json:"adventure"`
}

// Slice returns the colours as [base, bridge, adventure].
func (t Triple) Slice() []string {
	return []string{t.Base, t.Bridge, t.Adventure}
}

// GenerateVivid builds a high-contrast palette around hex. The adventure hue
// favours complementary and triadic offsets and the bridge sits on the arc
// between base and adventure.
func GenerateVivid(hex string, rnd Random, opts VividOptions, p Params) (Triple, error) {
	return generate(hex, true, rnd, opts, p)
}

// GenerateMuted builds a subdued palette around hex. The adventure hue
// favours analogous and medium offsets and the bridge is the low-chroma
// colour furthest from both endpoints.
func GenerateMuted(hex string, rnd Random, opts VividOptions, p Params) (Triple, error) {
	return generate(hex, false, rnd, opts, p)
}

func generate(hex string, vivid bool, rnd Random, opts VividOptions, p Params) (Triple, error) {
	baseRGB, err := colour.ParseHex(hex)
	if err != nil {
		return Triple{}, err
	}

	bgHex := opts.Background
	if bgHex == "" {
		bgHex = DefaultBackground
	}
	bg, err := colour.ParseHex(bgHex)
	if err != nil {
		return Triple{}, fmt.Errorf("background: %w", err)
	}

	hueRange := p.HueOffsetRange
	if opts.HueOffsetRange != nil {
		hueRange = *opts.HueOffsetRange
	}
	if !hueRange.Valid() {
		return Triple{}, fmt.Errorf("%w: hue offset range [%g, %g]", ErrInvalidParams, hueRange.Min, hueRange.Max)
	}

	base := baseRGB.Oklab()

	var offset float64
	if vivid {
		offset = sampleVividOffset(rnd, p)
	} else {
		offset = sampleMutedOffset(rnd, p)
	}
	if !hueRange.IsFull() {
		offset = enforceHueRange(offset, hueRange, rnd, p)
	}

	adventure := makeAdventure(base, vivid, offset, p)

	var bridge colour.Oklab
	if vivid {
		bridge = makeBridge(base, adventure, p)
	} else {
		bridge = findMaxMinDistanceColor(base, adventure, rnd, p)
	}

	bridgeRGB, _ := NudgeForContrast(colour.ClipOklab(bridge).RGB(), bg, p.MinContrastOnBg, p)
	adventureRGB, _ := NudgeForContrast(colour.ClipOklab(adventure).RGB(), bg, p.MinContrastOnBg, p)

	return Triple{
		Base:      baseRGB.Hex(),
		Bridge:    bridgeRGB.Hex(),
		Adventure: adventureRGB.Hex(),
	}, nil
}

// sampleVividOffset draws a hue offset biased toward complementary and
// triadic relationships.
func sampleVividOffset(rnd Random, p Params) float64 {
	r := rnd.Float64()
	h := p.Hue
	switch {
	case r < p.Probability.Complementary:
		return h.Complementary.Min + rnd.Float64()*h.Complementary.Width()
	case r < p.Probability.Complementary+p.Probability.Triadic:
		if rnd.Float64() < 0.5 {
			return h.TriadicFirst.Min + rnd.Float64()*h.TriadicFirst.Width()
		}
		return h.TriadicSecond.Min + rnd.Float64()*h.TriadicSecond.Width()
	default:
		return rnd.Float64() * 360
	}
}

// sampleMutedOffset draws a hue offset biased toward analogous and medium
// distance relationships. The result may be negative.
func sampleMutedOffset(rnd Random, p Params) float64 {
	r := rnd.Float64()
	h := p.Hue
	switch {
	case r < p.Probability.Analogous:
		return h.Analogous.Min + rnd.Float64()*h.Analogous.Width()
	case r < p.Probability.Analogous+p.Probability.MediumDistance:
		if rnd.Float64() < 0.5 {
			return h.MediumDistance.Min + rnd.Float64()*h.MediumDistance.Width()
		}
		return h.Opposite.Min + rnd.Float64()*h.Opposite.Width()
	default:
		return rnd.Float64() * 360
	}
}

// enforceHueRange returns offset normalised into [0, 360) when it falls in r,
// otherwise redraws a uniform offset a bounded number of times before
// clamping the original into r.
func enforceHueRange(offset float64, r HueRange, rnd Random, p Params) float64 {
	normalized := colour.NormalizeHue(offset)
	if normalized >= r.Min && normalized <= r.Max {
		return normalized
	}

	for range p.Adjustment.MaxRetries {
		candidate := colour.NormalizeHue(rnd.Float64() * 360)
		if candidate >= r.Min && candidate <= r.Max {
			return candidate
		}
	}

	return clampFloat(normalized, r.Min, r.Max)
}

// adaptiveDeltas picks the chroma and lightness change for the adventure
// colour from the base colour's lightness and chroma bucket.
func adaptiveDeltas(base colour.Oklab, vivid bool, p Params) (dC, dL float64) {
	c := base.Chroma()
	l := base.L
	lt := p.Lightness

	if vivid {
		d := p.Vivid
		switch {
		case l > lt.High:
			return d.Extreme.Chroma, -d.Extreme.Lightness
		case l < lt.VeryLow:
			return d.Extreme.Chroma, d.Extreme.Lightness
		case l > lt.UpperMid:
			return d.High.Chroma, -d.High.Lightness
		case l < lt.LowerMid:
			return d.High.Chroma, d.High.Lightness
		case c < p.LowChroma:
			return d.High.Chroma, towardOpposite(l, lt.Middle, d.Standard.Lightness)
		case c > p.HighChroma:
			return d.HighChroma.Base - (c-p.HighChroma)*d.HighChroma.Factor, d.HighChroma.Lightness
		default:
			return d.Standard.Chroma, towardOpposite(l, lt.Middle, d.Standard.Lightness)
		}
	}

	d := p.Muted
	switch {
	case l > lt.High:
		return d.Standard.Chroma, -d.Standard.Lightness
	case l < lt.VeryLow:
		return d.Standard.Chroma, d.Standard.Lightness
	case c < p.LowChroma:
		return d.Low.Chroma, towardOpposite(l, lt.UpperMid, d.Low.Lightness)
	case c > p.HighChroma:
		return d.HighChroma.Base - (c-p.HighChroma)*d.HighChroma.Factor, d.HighChroma.Lightness
	default:
		// Mid-range muted colours drift slightly further in their own direction.
		return d.Balance.Chroma, -towardOpposite(l, lt.UpperMid, d.Balance.Lightness)
	}
}

// towardOpposite returns -step above split and +step otherwise.
func towardOpposite(l, split, step float64) float64 {
	if l > split {
		return -step
	}
	return step
}

// makeAdventure rotates base by offset degrees and applies the adaptive
// deltas. Near-neutral extremes have no usable hue, so their a/b are placed
// directly from the target chroma at the offset angle.
func makeAdventure(base colour.Oklab, vivid bool, offset float64, p Params) colour.Oklab {
	dC, dL := adaptiveDeltas(base, vivid, p)
	maxChroma := p.Chroma.MutedMax
	if vivid {
		maxChroma = p.Chroma.VividMax
	}

	c := base.Chroma()
	rad := offset * math.Pi / 180
	lightness := clampFloat(base.L+dL, 0, 1)

	if c < p.Chroma.Low && (base.L < p.Lightness.Low || base.L > p.Lightness.High) {
		target := clampFloat(c+dC, 0, maxChroma)
		return colour.Oklab{
			L: lightness,
			A: target * math.Cos(rad),
			B: target * math.Sin(rad),
		}
	}

	cos, sin := math.Cos(rad), math.Sin(rad)
	a := base.A*cos - base.B*sin
	b := base.A*sin + base.B*cos

	current := math.Hypot(a, b)
	target := clampFloat(current+dC, 0, maxChroma)
	factor := 1.0
	if current > 0 {
		factor = target / current
	}

	return colour.Oklab{L: lightness, A: a * factor, B: b * factor}
}

// makeBridge interpolates from base toward adventure in polar coordinates,
// taking the shorter way round the hue circle, and damps the chroma.
func makeBridge(base, adventure colour.Oklab, p Params) colour.Oklab {
	t := p.Adjustment.BridgePosition

	l := base.L + (adventure.L-base.L)*t

	ca := math.Hypot(base.A, base.B)
	cb := math.Hypot(adventure.A, adventure.B)
	ha := math.Atan2(base.B, base.A)
	hb := math.Atan2(adventure.B, adventure.A)

	dh := hb - ha
	if dh > math.Pi {
		dh -= 2 * math.Pi
	}
	if dh < -math.Pi {
		dh += 2 * math.Pi
	}
	h := ha + dh*t

	c := (ca*(1-t) + cb*t) * p.Adjustment.ChromaReduction
	return colour.Oklab{L: l, A: c * math.Cos(h), B: c * math.Sin(h)}
}

// findMaxMinDistanceColor searches a grid of subdued colours plus random
// samples for the one whose smaller ΔE to base and adventure is largest.
func findMaxMinDistanceColor(base, adventure colour.Oklab, rnd Random, p Params) colour.Oklab {
	bs := p.Bridge
	lt := p.Lightness

	var candidates []colour.Oklab
	for hue := 0.0; hue < 360; hue += bs.HueStep {
		rad := hue * math.Pi / 180
		for _, lf := range bs.LightnessFactors {
			for _, cf := range bs.ChromaFactors {
				chroma := p.Chroma.MutedTarget * cf
				candidates = append(candidates, colour.Oklab{
					L: lt.MutedMin + lf*(lt.MutedMax-lt.MutedMin),
					A: chroma * math.Cos(rad),
					B: chroma * math.Sin(rad),
				})
			}
		}
	}

	for range bs.RandomSamples {
		rad := rnd.Float64() * 2 * math.Pi
		cf := bs.RandomChromaScale.Min + rnd.Float64()*bs.RandomChromaScale.Width()
		l := bs.RandomLightness.Min + rnd.Float64()*bs.RandomLightness.Width()
		chroma := p.Chroma.MutedTarget * cf
		candidates = append(candidates, colour.Oklab{
			L: l,
			A: chroma * math.Cos(rad),
			B: chroma * math.Sin(rad),
		})
	}

	best := candidates[0]
	bestScore := 0.0
	for _, c := range candidates {
		score := min(colour.DeltaE(c, base), colour.DeltaE(c, adventure))
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	f := p.Adjustment.FinalChromaFactor
	return colour.Oklab{L: best.L, A: best.A * f, B: best.B * f}
}

// NudgeForContrast steps the lightness of c away from bg until the WCAG
// contrast ratio reaches minContrast or the step budget runs out. Colours are
// darkened on light backgrounds and lightened on dark ones. It returns the
// adjusted colour and the number of steps taken.
func NudgeForContrast(c, bg colour.RGB, minContrast float64, p Params) (colour.RGB, int) {
	darken := colour.Luminance(bg) > p.Lightness.Middle
	step := p.Adjustment.ContrastStep
	if darken {
		step = -step
	}

	tries := 0
	for colour.ContrastRatio(c, bg) < minContrast && tries < p.Adjustment.MaxTries {
		o := c.Oklab()
		o.L = clampFloat(o.L+step, 0, 1)
		c = colour.ClipOklab(o).RGB()
		tries++
	}
	return c, tries
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
