package harmony

import (
	"math"
	"testing"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
)

func TestClashTarget(t *testing.T) {
	tests := []struct {
		name    string
		primary colour.Oklch
		want    colour.Oklch
	}{
		{"light low chroma", colour.Oklch{L: 0.9, C: 0.02, H: 0}, colour.Oklch{L: 0.3, C: 0.15, H: 180}},
		{"dark high chroma", colour.Oklch{L: 0.3, C: 0.2, H: 270}, colour.Oklch{L: 0.75, C: 0.05, H: 90}},
		{"boundary values", colour.Oklch{L: 0.5, C: 0.1, H: 200}, colour.Oklch{L: 0.75, C: 0.15, H: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClashTarget(tt.primary)
			if math.Abs(got.L-tt.want.L) > 1e-12 || math.Abs(got.C-tt.want.C) > 1e-12 || math.Abs(got.H-tt.want.H) > 1e-9 {
				t.Errorf("ClashTarget() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClashPair(t *testing.T) {
	primary := dye("warm-white", "#E8E0D8")
	eligible := []catalog.Dye{
		dye("navy", "#1C2A50"),
		dye("forest", "#1E4030"),
		dye("slate", "#606878"),
		dye("sky", "#83B0D2"),
		dye("rust", "#622207"),
		dye("ash", "#ACA8A2"),
	}

	pair, matched := clashPair(primary, eligible, NewSeededRandom(1))
	if !matched {
		t.Fatal("clashPair() reported no match")
	}
	// navy is nearest the dark blue target; slate is nearest the midpoint
	if pair[1].ID != "navy" {
		t.Errorf("third = %s, want navy", pair[1].ID)
	}
	if pair[0].ID != "slate" {
		t.Errorf("bridge = %s, want slate", pair[0].ID)
	}
}

func TestClashPairTwoCandidates(t *testing.T) {
	primary := dye("white", "#FFFFFF")
	eligible := []catalog.Dye{dye("a", "#102030"), dye("b", "#FFEEDD")}

	pair, _ := clashPair(primary, eligible, NewSeededRandom(7))
	if pair[0].ID == pair[1].ID {
		t.Errorf("clashPair() returned %s twice", pair[0].ID)
	}
}
