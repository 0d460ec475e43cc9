// Package catalog provides the dye catalog: immutable catalog entries,
// user-defined custom colours, catalog loading and filtering.
package catalog

import (
	"slices"

	"github.com/jmylchreest/dyeharmony/internal/colour"
)

// Category is the coarse colour family a dye belongs to.
type Category string

const (
	CategoryWhite  Category = "white"
	CategoryRed    Category = "red"
	CategoryBrown  Category = "brown"
	CategoryYellow Category = "yellow"
	CategoryGreen  Category = "green"
	CategoryBlue   Category = "blue"
	CategoryPurple Category = "purple"
	CategoryRare   Category = "rare"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryWhite, CategoryRed, CategoryBrown, CategoryYellow,
		CategoryGreen, CategoryBlue, CategoryPurple, CategoryRare,
	}
}

// Source discriminates catalog dyes from user-defined colours.
type Source string

const (
	// SourceGame marks an entry loaded from the dye catalog.
	SourceGame Source = "game"
	// SourceCustom marks a colour defined by the user.
	SourceCustom Source = "custom"
)

// TagCustom is attached to every dye built from a custom colour.
const TagCustom = "custom"

// Dye is a single colour entry. Only RGB is stored; the other colour
// representations are derived on demand so they always agree with it.
type Dye struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  Category   `json:"category"`
	RGB       colour.RGB `json:"rgb"`
	Tags      []string   `json:"tags,omitempty"`
	Lodestone string     `json:"lodestone,omitempty"`

	// Source is empty for entries decoded from a catalog file; use
	// EntrySource to read it.
	Source Source `json:"source,omitempty"`
	// Custom is set only when Source is SourceCustom.
	Custom *CustomColor `json:"custom,omitempty"`
}

// HSV returns the dye colour in HSV.
func (d Dye) HSV() colour.HSV { return d.RGB.HSV() }

// Hex returns the dye colour as "#RRGGBB".
func (d Dye) Hex() string { return d.RGB.Hex() }

// Oklab returns the dye colour in Oklab.
func (d Dye) Oklab() colour.Oklab { return d.RGB.Oklab() }

// Oklch returns the dye colour in Oklch.
func (d Dye) Oklch() colour.Oklch { return d.RGB.Oklch() }

// HasTag reports whether the dye carries tag.
func (d Dye) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

// EntrySource returns the discriminator for the dye, treating an unset
// source as a catalog entry.
func (d Dye) EntrySource() Source {
	if d.Source == "" {
		return SourceGame
	}
	return d.Source
}

// IsCustom reports whether the dye was built from a user-defined colour.
func (d Dye) IsCustom() bool {
	return d.EntrySource() == SourceCustom
}

// DyeJSON is the output form of a dye with every derived representation.
type DyeJSON struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category Category     `json:"category"`
	Source   Source       `json:"source"`
	Hex      string       `json:"hex"`
	RGB      colour.RGB   `json:"rgb"`
	HSV      colour.HSV   `json:"hsv"`
	Oklab    colour.Oklab `json:"oklab"`
	Tags     []string     `json:"tags,omitempty"`
}

// JSON returns the output form of the dye.
func (d Dye) JSON() DyeJSON {
	return DyeJSON{
		ID:       d.ID,
		Name:     d.Name,
		Category: d.Category,
		Source:   d.EntrySource(),
		Hex:      d.Hex(),
		RGB:      d.RGB,
		HSV:      d.HSV(),
		Oklab:    d.Oklab(),
		Tags:     d.Tags,
	}
}
