package colour

import "math"

// HSV is the hexagonal hue/saturation/value form of an RGB colour.
// H is in [0, 360), S and V are percentages in [0, 100]. Values derived from
// RGB are rounded to whole degrees and whole percent.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// roundHalfUp rounds halves towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// HSV converts the colour to HSV.
func (rgb RGB) HSV() HSV {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	var h float64
	if delta != 0 {
		switch maxVal {
		case r:
			h = math.Mod((g-b)/delta, 6)
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
	}
	h = roundHalfUp(h * 60)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}

	var s float64
	if maxVal != 0 {
		s = roundHalfUp(delta / maxVal * 100)
	}

	return HSV{H: h, S: s, V: roundHalfUp(maxVal * 100)}
}

// RGB converts the HSV colour back to RGB. The hue is normalised into
// [0, 360) first so callers may pass raw offsets.
func (hsv HSV) RGB() RGB {
	h := NormalizeHue(hsv.H) / 360
	s := clamp(hsv.S, 0, 100) / 100
	v := clamp(hsv.V, 0, 100) / 100

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(h * 6) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// toChannel scales a unit value to a rounded 8-bit channel.
func toChannel(v float64) uint8 {
	return uint8(clamp(roundHalfUp(v*255), 0, 255))
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
