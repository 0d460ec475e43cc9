package harmony

import "math/rand/v2"

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	// LCGModulus is the period bound of the seeded generator.
	LCGModulus = 233280
)

// Random is a source of uniform values in [0, 1).
type Random interface {
	Float64() float64
}

// lcg is the linear congruential generator used for reproducible palettes.
type lcg struct {
	state int64
}

// NewSeededRandom returns a deterministic generator for seed. Two generators
// created from the same seed produce the same sequence.
func NewSeededRandom(seed int64) Random {
	s := seed % LCGModulus
	if s < 0 {
		s += LCGModulus
	}
	return &lcg{state: s}
}

// Float64 advances the generator and returns the next value.
func (g *lcg) Float64() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % LCGModulus
	return float64(g.state) / LCGModulus
}

type ambientRandom struct{}

// NewRandom returns a non-deterministic generator.
func NewRandom() Random {
	return ambientRandom{}
}

func (ambientRandom) Float64() float64 {
	// #nosec G404 -- palette generation is not security sensitive
	return rand.Float64()
}

// randomIndex draws an index in [0, n) from rnd.
func randomIndex(rnd Random, n int) int {
	i := int(rnd.Float64() * float64(n))
	return min(i, n-1)
}
