package catalog

import "slices"

// Range is an inclusive numeric range.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Filter narrows a dye list down to the eligible candidate pool.
type Filter struct {
	// Category restricts results to one category when set.
	Category Category
	// Hue, Saturation and Value bound the dye's HSV components.
	Hue        Range
	Saturation Range
	Value      Range
	// ExcludeTags removes dyes carrying any of these tags.
	ExcludeTags []string
}

// DefaultFilter returns a filter that keeps every dye.
func DefaultFilter() Filter {
	return Filter{
		Hue:        Range{Min: 0, Max: 360},
		Saturation: Range{Min: 0, Max: 100},
		Value:      Range{Min: 0, Max: 100},
	}
}

// Matches reports whether d passes the filter.
func (f Filter) Matches(d Dye) bool {
	if f.Category != "" && d.Category != f.Category {
		return false
	}

	hsv := d.HSV()
	if !f.Hue.Contains(hsv.H) || !f.Saturation.Contains(hsv.S) || !f.Value.Contains(hsv.V) {
		return false
	}

	for _, tag := range f.ExcludeTags {
		if slices.Contains(d.Tags, tag) {
			return false
		}
	}
	return true
}

// Apply returns the dyes that pass the filter, preserving order.
func (f Filter) Apply(dyes []Dye) []Dye {
	out := make([]Dye, 0, len(dyes))
	for _, d := range dyes {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}
