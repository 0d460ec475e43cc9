package harmony

import (
	"cmp"
	"math"
	"slices"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
)

// Weights scale the components of the selector score.
type Weights struct {
	Hue       float64
	Chroma    float64
	Lightness float64
}

// SelectorOptions configures SelectAnalogous.
type SelectorOptions struct {
	// HueWindow is the maximum hue distance in degrees for a candidate.
	HueWindow float64
	// Theta normalises the hue penalty; distances beyond it grow quickly.
	Theta      float64
	Weights    Weights
	NumResults int
	// DiversifyByLightness spreads picks across lightness bins, skipping
	// the bin the base colour sits in.
	DiversifyByLightness bool
}

// DefaultSelectorOptions returns the standard selector settings.
func DefaultSelectorOptions() SelectorOptions {
	return SelectorOptions{
		HueWindow:  35,
		Theta:      30,
		Weights:    Weights{Hue: 1.0, Chroma: 0.3, Lightness: 0.2},
		NumResults: 2,
	}
}

// Candidate is a scored dye. Lower scores are closer to the base.
type Candidate struct {
	Dye   catalog.Dye
	Oklch colour.Oklch
	Score float64
	DH    float64
	DC    float64
	DL    float64
}

const lightnessBins = 3

// SelectAnalogous ranks pool dyes that share the base dye's colour family.
//
// Each candidate is scored in Oklch against the base as
//
//	wh*(Δh/θ)² + wc*ΔC/(C_base+1e-6) + wl*ΔL
//
// and kept when Δh is within the hue window. When too few survive, the
// hue-closest remaining dyes are added. The result holds at most NumResults
// candidates ordered by score, then Δh, then ΔC.
func SelectAnalogous(base catalog.Dye, pool []catalog.Dye, opts SelectorOptions) []Candidate {
	if opts.NumResults <= 0 {
		opts.NumResults = DefaultSelectorOptions().NumResults
	}
	if opts.Theta <= 0 {
		opts.Theta = DefaultSelectorOptions().Theta
	}

	b := base.Oklch()
	scored := make([]Candidate, 0, len(pool))
	for _, d := range pool {
		if d.ID == base.ID {
			continue
		}
		c := d.Oklch()
		dh := colour.HueDistance(b.H, c.H)
		dC := math.Abs(c.C - b.C)
		dL := math.Abs(c.L - b.L)
		x := dh / opts.Theta
		score := opts.Weights.Hue*x*x +
			opts.Weights.Chroma*(dC/(b.C+1e-6)) +
			opts.Weights.Lightness*dL
		scored = append(scored, Candidate{Dye: d, Oklch: c, Score: score, DH: dh, DC: dC, DL: dL})
	}

	filtered := make([]Candidate, 0, len(scored))
	for _, c := range scored {
		if c.DH <= opts.HueWindow {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) < opts.NumResults {
		present := make(map[string]struct{}, len(filtered))
		for _, c := range filtered {
			present[c.Dye.ID] = struct{}{}
		}
		byHue := slices.Clone(scored)
		slices.SortStableFunc(byHue, func(x, y Candidate) int { return cmp.Compare(x.DH, y.DH) })
		for _, c := range byHue {
			if len(filtered) >= opts.NumResults {
				break
			}
			if _, ok := present[c.Dye.ID]; ok {
				continue
			}
			filtered = append(filtered, c)
		}
	}

	slices.SortStableFunc(filtered, func(x, y Candidate) int { return cmp.Compare(x.Score, y.Score) })

	var picked []Candidate
	if opts.DiversifyByLightness {
		picked = diversifyByLightness(filtered, b.L, opts.NumResults)
	} else {
		picked = filtered[:min(opts.NumResults, len(filtered))]
	}

	slices.SortStableFunc(picked, compareCandidates)
	return picked
}

// diversifyByLightness splits score-sorted candidates into equal-width
// lightness bins over the range of candidates and base, keeps the best few
// of each bin, and drops the bin holding the base.
func diversifyByLightness(sorted []Candidate, baseL float64, n int) []Candidate {
	lo, hi := baseL, baseL
	for _, c := range sorted {
		lo = min(lo, c.Oklch.L)
		hi = max(hi, c.Oklch.L)
	}
	step := (hi - lo) / lightnessBins
	if step == 0 {
		step = 1
	}

	perBin := (n + lightnessBins - 1) / lightnessBins
	var bins [lightnessBins][]Candidate
	for _, c := range sorted {
		i := lightnessBin(c.Oklch.L, lo, step)
		if len(bins[i]) < perBin {
			bins[i] = append(bins[i], c)
		}
	}

	banned := lightnessBin(baseL, lo, step)
	out := make([]Candidate, 0, n)
	for i, bin := range bins {
		if i == banned {
			continue
		}
		out = append(out, bin...)
	}
	return out[:min(n, len(out))]
}

func lightnessBin(l, lo, step float64) int {
	i := int(math.Floor((l - lo) / step))
	return max(0, min(lightnessBins-1, i))
}

func compareCandidates(x, y Candidate) int {
	return cmp.Or(
		cmp.Compare(x.Score, y.Score),
		cmp.Compare(x.DH, y.DH),
		cmp.Compare(x.DC, y.DC),
	)
}
