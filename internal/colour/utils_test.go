package colour

import (
	"math"
	"testing"
)

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 270, 180},
		{30, 60, 30},
		{720, 10, 10},
	}

	for _, tt := range tests {
		got := HueDistance(tt.h1, tt.h2)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
		if got < 0 || got > 180 {
			t.Errorf("HueDistance(%v, %v) = %v out of [0,180]", tt.h1, tt.h2, got)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-30, 330},
		{725, 5},
		{-720, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		if got := NormalizeHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := NormalizeHue(-1e-15); got < 0 || got >= 360 {
		t.Errorf("NormalizeHue(-1e-15) = %v, want value in [0,360)", got)
	}
}

func TestContrastRatio(t *testing.T) {
	white := RGB{R: 255, G: 255, B: 255}
	black := RGB{}

	if got := ContrastRatio(white, black); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}
	if got := ContrastRatio(black, white); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio is not symmetric: %v", got)
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Errorf("ContrastRatio(white, white) = %v, want 1", got)
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(RGB{}); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := Luminance(RGB{R: 255, G: 255, B: 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
	if Luminance(RGB{G: 255}) <= Luminance(RGB{R: 255}) {
		t.Error("green should be more luminous than red")
	}
}
