package colour

import "math"

// Oklab is a colour in the perceptually uniform Oklab space.
// L is lightness in [0, 1]; A and B are unbounded chromaticity axes that stay
// within roughly ±0.4 for displayable colours.
type Oklab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Oklch is the polar form of Oklab. C is chroma (>= 0), H is hue in degrees [0, 360).
type Oklch struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component [0,1] to sRGB.
func linearToSRGB(v float64) float64 {
	if v < 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// Oklab converts the colour to Oklab.
func (rgb RGB) Oklab() Oklab {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	// linear RGB → LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return Oklab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// Oklch converts the colour to Oklch.
func (rgb RGB) Oklch() Oklch {
	return rgb.Oklab().Oklch()
}

// linearRGB returns the unclamped linear sRGB channels for the colour.
// Channels outside [0, 1] mean the colour is outside the sRGB gamut.
func (o Oklab) linearRGB() (r, g, b float64) {
	lp := o.L + 0.3963377774*o.A + 0.2158037573*o.B
	mp := o.L - 0.1055613458*o.A - 0.0638541728*o.B
	sp := o.L - 0.0894841775*o.A - 1.2914855480*o.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r = +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}

// InGamut reports whether the colour is representable in sRGB without clipping.
func (o Oklab) InGamut() bool {
	const eps = 1e-6
	r, g, b := o.linearRGB()
	for _, v := range []float64{r, g, b} {
		if math.IsNaN(v) || v < -eps || v > 1+eps {
			return false
		}
	}
	return true
}

// RGB converts the colour back to 8-bit sRGB. Each linear channel is limited
// to [0, 1] before gamma encoding and the result is rounded to the nearest
// integer, so out-of-gamut input collapses onto the gamut boundary.
func (o Oklab) RGB() RGB {
	r, g, b := o.linearRGB()
	return RGB{
		R: encodeChannel(r),
		G: encodeChannel(g),
		B: encodeChannel(b),
	}
}

func encodeChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return toChannel(linearToSRGB(clamp(v, 0, 1)))
}

// Chroma returns the distance of the colour from the neutral axis.
func (o Oklab) Chroma() float64 {
	return math.Hypot(o.A, o.B)
}

// Oklch converts the colour to its polar form.
func (o Oklab) Oklch() Oklch {
	h := math.Atan2(o.B, o.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return Oklch{L: o.L, C: math.Hypot(o.A, o.B), H: h}
}

// Oklab converts the colour to Cartesian form.
func (c Oklch) Oklab() Oklab {
	rad := c.H * math.Pi / 180
	return Oklab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// RGB converts the colour to 8-bit sRGB.
func (c Oklch) RGB() RGB {
	return c.Oklab().RGB()
}

// ClipOklab forces a colour into the sRGB gamut by round-tripping it through
// clamped 8-bit RGB. Clipping an already clipped colour returns it unchanged.
func ClipOklab(o Oklab) Oklab {
	return o.RGB().Oklab()
}

// DeltaE is the Euclidean distance between two colours in Oklab.
func DeltaE(c1, c2 Oklab) float64 {
	dL := c1.L - c2.L
	dA := c1.A - c2.A
	dB := c1.B - c2.B
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

// Midpoint returns the arithmetic mean of two colours in Oklab.
func Midpoint(c1, c2 Oklab) Oklab {
	return Oklab{
		L: (c1.L + c2.L) / 2,
		A: (c1.A + c2.A) / 2,
		B: (c1.B + c2.B) / 2,
	}
}
