package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jmylchreest/dyeharmony/internal/colour"
)

func TestNewCustomColor(t *testing.T) {
	rgb := colour.RGB{R: 120, G: 85, B: 45}
	c, err := NewCustomColor("  Saddle  ", rgb)
	if err != nil {
		t.Fatalf("NewCustomColor() error = %v", err)
	}
	if c.Name != "Saddle" {
		t.Errorf("Name = %q, want %q", c.Name, "Saddle")
	}
	if _, err := uuid.Parse(c.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", c.ID, err)
	}
	if !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Error("CreatedAt and UpdatedAt should match on creation")
	}

	d := c.ToDye()
	if d.ID != "custom-"+c.ID {
		t.Errorf("dye ID = %q, want custom-%s", d.ID, c.ID)
	}
	if !d.IsCustom() || !d.HasTag(TagCustom) {
		t.Error("dye should be tagged as custom")
	}
	if d.Category != CategoryWhite {
		t.Errorf("Category = %q, want %q", d.Category, CategoryWhite)
	}
	if d.RGB != rgb {
		t.Errorf("RGB = %v, want %v", d.RGB, rgb)
	}
}

func TestValidateCustomName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "Mine", false},
		{"max length", strings.Repeat("a", MaxCustomNameLength), false},
		{"multibyte at max", strings.Repeat("é", MaxCustomNameLength), false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", MaxCustomNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCustomName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCustomName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("error = %v, want ErrInvalidName", err)
			}
		})
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		input   string
		want    colour.RGB
		wantErr bool
	}{
		{"120,85,45", colour.RGB{R: 120, G: 85, B: 45}, false},
		{" 0 , 255 ,7 ", colour.RGB{R: 0, G: 255, B: 7}, false},
		{"256,0,0", colour.RGB{}, true},
		{"-1,0,0", colour.RGB{}, true},
		{"1,2", colour.RGB{}, true},
		{"a,b,c", colour.RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRGB(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRGB() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, colour.ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseRGB() = %v, want %v", got, tt.want)
			}
			if back, _ := ParseRGB(FormatRGB(got)); back != got {
				t.Errorf("FormatRGB round trip = %v, want %v", back, got)
			}
		})
	}
}
