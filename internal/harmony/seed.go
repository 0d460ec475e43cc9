package harmony

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
)

// SeedMode determines how the seed for a suggestion is chosen.
type SeedMode string

const (
	// SeedModeRandom draws a fresh seed on every call (default).
	SeedModeRandom SeedMode = "random"
	// SeedModeContent derives the seed from the primary colour and pattern,
	// so the same request always yields the same palette.
	SeedModeContent SeedMode = "content"
	// SeedModeManual uses a caller-provided seed value.
	SeedModeManual SeedMode = "manual"
)

// SeedConfig holds configuration for seed selection.
type SeedConfig struct {
	Mode  SeedMode
	Value *int64 // only used with SeedModeManual
}

// CalculateSeed resolves the seed for primary and pattern according to cfg.
func CalculateSeed(primary catalog.Dye, pattern Pattern, cfg SeedConfig) (int64, error) {
	switch cfg.Mode {
	case SeedModeRandom, "":
		return GenerateRandomSeed(), nil
	case SeedModeContent:
		return ContentSeed(primary, pattern), nil
	case SeedModeManual:
		if cfg.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *cfg.Value, nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", cfg.Mode)
	}
}

// ContentSeed hashes the primary colour and pattern into a seed within the
// generator's period.
func ContentSeed(primary catalog.Dye, pattern Pattern) int64 {
	hasher := sha256.New()
	hasher.Write([]byte(primary.Hex()))
	hasher.Write([]byte{0})
	hasher.Write([]byte(pattern))
	hash := hasher.Sum(nil)
	v := binary.LittleEndian.Uint64(hash[:8])
	return int64(v%(LCGModulus-1)) + 1 // #nosec G115 -- bounded by LCGModulus
}

// GenerateRandomSeed generates a non-deterministic seed in [1, LCGModulus).
func GenerateRandomSeed() int64 {
	// #nosec G404 -- seed generation is intentionally non-deterministic
	return 1 + rand.Int64N(LCGModulus-1)
}

// ValidSeedModes returns the accepted seed modes.
func ValidSeedModes() []SeedMode {
	return []SeedMode{SeedModeRandom, SeedModeContent, SeedModeManual}
}

// ParseSeedMode converts a string to a SeedMode.
func ParseSeedMode(s string) (SeedMode, error) {
	mode := SeedMode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ValidSeedModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, content, manual)", s)
}
