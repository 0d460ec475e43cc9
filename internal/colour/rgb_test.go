package colour

import (
	"errors"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#FF0000"},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: "#00FF00"},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: "#0000FF"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "mixed", rgb: RGB{R: 26, G: 43, B: 60}, want: "#1A2B3C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "without hash", input: "ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "mixed case", input: "#aAbBcC", want: RGB{R: 170, G: 187, B: 204}},
		{name: "short form", input: "#FFF", wantErr: true},
		{name: "too long", input: "#FFFFFFF", wantErr: true},
		{name: "non hex digit", input: "#GG0000", wantErr: true},
		{name: "double hash", input: "##FF0000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: " #FF0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got, err := ParseHex(rgb.Hex())
				if err != nil {
					t.Fatalf("ParseHex(%s) error: %v", rgb.Hex(), err)
				}
				if got != rgb {
					t.Fatalf("round trip %s = %+v, want %+v", rgb.Hex(), got, rgb)
				}
			}
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("abcdef")
	if err != nil {
		t.Fatalf("NormalizeHex() error: %v", err)
	}
	if got != "#ABCDEF" {
		t.Errorf("NormalizeHex() = %s, want #ABCDEF", got)
	}
}
