package harmony

import (
	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
)

// Match is a catalog dye assigned to a target colour.
type Match struct {
	Dye   catalog.Dye
	Delta float64
}

// MatchNearest assigns each target, in order, the closest pool dye by Oklab
// ΔE that no earlier target has claimed. Ties go to the earlier pool entry.
// A target left without an unclaimed dye produces no match, so the result
// may be shorter than targets.
func MatchNearest(targets []colour.Oklab, pool []catalog.Dye) []Match {
	labs := make([]colour.Oklab, len(pool))
	for i, d := range pool {
		labs[i] = d.Oklab()
	}

	claimed := make(map[string]struct{}, len(targets))
	matches := make([]Match, 0, len(targets))
	for _, target := range targets {
		best := -1
		bestDelta := 0.0
		for i, d := range pool {
			if _, used := claimed[d.ID]; used {
				continue
			}
			delta := colour.DeltaE(target, labs[i])
			if best < 0 || delta < bestDelta {
				best = i
				bestDelta = delta
			}
		}
		if best < 0 {
			continue
		}
		claimed[pool[best].ID] = struct{}{}
		matches = append(matches, Match{Dye: pool[best], Delta: bestDelta})
	}
	return matches
}

// MatchNearestRGB is MatchNearest for RGB targets.
func MatchNearestRGB(targets []colour.RGB, pool []catalog.Dye) []Match {
	labs := make([]colour.Oklab, len(targets))
	for i, t := range targets {
		labs[i] = t.Oklab()
	}
	return MatchNearest(labs, pool)
}

// HueTargets renders each hue at the primary's own saturation and value.
func HueTargets(primary catalog.Dye, hues [2]float64) []colour.RGB {
	hsv := primary.HSV()
	targets := make([]colour.RGB, len(hues))
	for i, h := range hues {
		targets[i] = colour.HSV{H: h, S: hsv.S, V: hsv.V}.RGB()
	}
	return targets
}

func matchedDyes(matches []Match) []catalog.Dye {
	out := make([]catalog.Dye, len(matches))
	for i, m := range matches {
		out[i] = m.Dye
	}
	return out
}
