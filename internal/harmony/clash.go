package harmony

import (
	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
)

const (
	clashLightnessSplit = 0.5
	clashDarkTarget     = 0.3
	clashLightTarget    = 0.75
	clashChromaSplit    = 0.1
	clashLowChroma      = 0.05
	clashHighChroma     = 0.15
)

// ClashTarget returns the Oklch target of the clashing colour: the opposite
// hue with lightness and chroma pushed to the other extreme from primary.
func ClashTarget(primary colour.Oklch) colour.Oklch {
	target := colour.Oklch{
		H: colour.NormalizeHue(primary.H + 180),
		L: clashLightTarget,
		C: clashHighChroma,
	}
	if primary.L > clashLightnessSplit {
		target.L = clashDarkTarget
	}
	if primary.C > clashChromaSplit {
		target.C = clashLowChroma
	}
	return target
}

// clashPair returns [bridge, third] for primary. eligible must exclude
// primary and hold at least two dyes with distinct IDs.
func clashPair(primary catalog.Dye, eligible []catalog.Dye, rnd Random) ([2]catalog.Dye, bool) {
	target := ClashTarget(primary.Oklch()).RGB()

	matches := MatchNearestRGB([]colour.RGB{target}, eligible)
	if len(matches) == 0 {
		return [2]catalog.Dye{eligible[0], eligible[1]}, false
	}
	third := matches[0].Dye

	rest := make([]catalog.Dye, 0, len(eligible)-1)
	for _, d := range eligible {
		if d.ID != third.ID {
			rest = append(rest, d)
		}
	}

	if len(rest) == 0 {
		return [2]catalog.Dye{eligible[0], eligible[1]}, false
	}

	mid := colour.Midpoint(primary.Oklab(), third.Oklab())
	bridges := MatchNearest([]colour.Oklab{mid}, rest)
	if len(bridges) == 0 {
		return [2]catalog.Dye{rest[randomIndex(rnd, len(rest))], third}, true
	}
	return [2]catalog.Dye{bridges[0].Dye, third}, true
}
