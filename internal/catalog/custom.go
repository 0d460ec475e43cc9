package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jmylchreest/dyeharmony/internal/colour"
)

// MaxCustomNameLength is the longest accepted custom colour name, in runes.
const MaxCustomNameLength = 50

// ErrInvalidName is returned when a custom colour name is empty or too long.
var ErrInvalidName = errors.New("invalid custom colour name")

// CustomColor is a colour defined by the user rather than the catalog.
type CustomColor struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	RGB       colour.RGB `json:"rgb"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewCustomColor validates name and creates a custom colour with a fresh ID.
func NewCustomColor(name string, rgb colour.RGB) (*CustomColor, error) {
	name, err := ValidateCustomName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &CustomColor{
		ID:        uuid.NewString(),
		Name:      name,
		RGB:       rgb,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateCustomName trims name and checks it is non-empty and at most
// MaxCustomNameLength runes. It returns the trimmed name.
func ValidateCustomName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(trimmed) > MaxCustomNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrInvalidName, MaxCustomNameLength)
	}
	return trimmed, nil
}

// ToDye converts the custom colour into a dye so it can be used as a primary
// or candidate alongside catalog entries.
func (c *CustomColor) ToDye() Dye {
	return Dye{
		ID:       "custom-" + c.ID,
		Name:     c.Name,
		Category: CategoryWhite,
		RGB:      c.RGB,
		Tags:     []string{TagCustom},
		Source:   SourceCustom,
		Custom:   c,
	}
}

// ParseRGB parses "r,g,b" (whitespace around values allowed) with each
// channel an integer in [0, 255].
func ParseRGB(s string) (colour.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colour.RGB{}, fmt.Errorf("%w: %q must have three comma separated values", colour.ErrInvalidFormat, s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return colour.RGB{}, fmt.Errorf("%w: %q is not a channel value in 0-255", colour.ErrInvalidFormat, strings.TrimSpace(part))
		}
		channels[i] = uint8(v)
	}

	return colour.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// FormatRGB renders a colour as "r, g, b".
func FormatRGB(rgb colour.RGB) string {
	return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
}
