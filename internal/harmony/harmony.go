// Package harmony suggests dye palettes. Given a primary colour and a
// pattern it either snaps geometric colour targets to the nearest catalog
// dyes or procedurally generates freeform colours.
package harmony

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/dyeharmony/internal/catalog"
)

// ErrInsufficientCandidates is returned when fewer than two dyes remain once
// the primary is excluded from the pool.
var ErrInsufficientCandidates = errors.New("insufficient candidates")

// suggestionCount is the number of dyes suggested alongside the primary.
const suggestionCount = 2

// Request describes a single suggestion.
type Request struct {
	Primary catalog.Dye
	Pattern Pattern
	// Pool is the candidate set, typically a filtered catalog. It may
	// contain the primary; it is excluded automatically.
	Pool []catalog.Dye
	// Seed makes the result reproducible. When nil a fresh seed is drawn
	// and reported in Result.Seed.
	Seed *int64
	// Vivid configures the vivid and muted patterns.
	Vivid VividOptions
}

// Result is a suggested palette.
type Result struct {
	Pattern Pattern     `json:"pattern"`
	Primary catalog.Dye `json:"primary"`
	// Suggestions holds two catalog dyes for catalog patterns.
	Suggestions []catalog.Dye `json:"suggestions,omitempty"`
	// Freeform holds the generated colours for vivid and muted.
	Freeform *Triple `json:"freeform,omitempty"`
	Seed     int64   `json:"seed"`
}

// Hexes returns the palette as hex colours, primary first.
func (r *Result) Hexes() []string {
	if r.Freeform != nil {
		return r.Freeform.Slice()
	}
	out := []string{r.Primary.Hex()}
	for _, d := range r.Suggestions {
		out = append(out, d.Hex())
	}
	return out
}

// Engine dispatches suggestion requests to the pattern algorithms.
type Engine struct {
	logger   hclog.Logger
	params   Params
	selector SelectorOptions
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for dispatch and fallback messages.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithParams replaces the vivid/muted generator parameters.
func WithParams(p Params) Option {
	return func(e *Engine) {
		e.params = p
	}
}

// WithSelectorOptions replaces the monochromatic selector settings.
func WithSelectorOptions(opts SelectorOptions) Option {
	return func(e *Engine) {
		e.selector = opts
	}
}

// New creates an Engine with default parameters and a silent logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:   hclog.NewNullLogger(),
		params:   DefaultParams(),
		selector: DefaultSelectorOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Params returns the generator parameters in use.
func (e *Engine) Params() Params {
	return e.params
}

// Suggest computes a palette for req. Catalog patterns return two dyes
// distinct from each other and from the primary; vivid and muted return
// freeform colours.
func (e *Engine) Suggest(req Request) (*Result, error) {
	if !req.Pattern.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, req.Pattern)
	}

	seed := GenerateRandomSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rnd := NewSeededRandom(seed)

	logger := e.logger.With("pattern", req.Pattern, "primary", req.Primary.ID, "seed", seed)
	result := &Result{Pattern: req.Pattern, Primary: req.Primary, Seed: seed}

	if req.Pattern.Freeform() {
		var (
			triple Triple
			err    error
		)
		if req.Pattern == PatternVivid {
			triple, err = GenerateVivid(req.Primary.Hex(), rnd, req.Vivid, e.params)
		} else {
			triple, err = GenerateMuted(req.Primary.Hex(), rnd, req.Vivid, e.params)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s palette: %w", req.Pattern, err)
		}
		logger.Debug("generated freeform palette", "bridge", triple.Bridge, "adventure", triple.Adventure)
		result.Freeform = &triple
		return result, nil
	}

	eligible := excludeDye(req.Pool, req.Primary.ID)
	if len(eligible) < suggestionCount {
		return nil, fmt.Errorf("%w: %d distinct eligible dyes, need %d", ErrInsufficientCandidates, len(eligible), suggestionCount)
	}

	var picked []catalog.Dye
	switch req.Pattern {
	case PatternMonochromatic:
		picked = e.monochromatic(req.Primary, eligible, logger)
	case PatternClash:
		pair, matched := clashPair(req.Primary, eligible, rnd)
		if !matched {
			logger.Debug("no clash match, using first eligible dyes")
		}
		picked = pair[:]
	default:
		hues, _ := TargetHues(req.Pattern, req.Primary.HSV().H)
		logger.Trace("target hues", "hues", hues)
		picked = matchedDyes(MatchNearestRGB(HueTargets(req.Primary, hues), eligible))
	}

	if len(picked) < suggestionCount {
		logger.Debug("filling suggestions randomly", "matched", len(picked))
		picked = fillRandom(picked, eligible, rnd, suggestionCount)
	}
	if len(picked) < suggestionCount {
		return nil, fmt.Errorf("%w: only %d distinct dyes", ErrInsufficientCandidates, len(picked))
	}

	result.Suggestions = picked[:suggestionCount]
	logger.Debug("suggested dyes", "first", result.Suggestions[0].ID, "second", result.Suggestions[1].ID)
	return result, nil
}

// monochromatic picks same-family dyes spread across lightness, topping up
// from the plain ranking when the lightness bins come up short.
func (e *Engine) monochromatic(primary catalog.Dye, eligible []catalog.Dye, logger hclog.Logger) []catalog.Dye {
	opts := e.selector
	opts.NumResults = suggestionCount
	opts.DiversifyByLightness = true

	picked := candidateDyes(SelectAnalogous(primary, eligible, opts))
	if len(picked) >= suggestionCount {
		return picked
	}

	logger.Debug("lightness diversification short, topping up", "picked", len(picked))
	opts.DiversifyByLightness = false
	for _, d := range candidateDyes(SelectAnalogous(primary, eligible, opts)) {
		if len(picked) >= suggestionCount {
			break
		}
		if !containsDye(picked, d.ID) {
			picked = append(picked, d)
		}
	}
	return picked
}

// fillRandom adds uniformly drawn dyes from pool that are not yet picked
// until n are picked or the pool is exhausted.
func fillRandom(picked, pool []catalog.Dye, rnd Random, n int) []catalog.Dye {
	remaining := make([]catalog.Dye, 0, len(pool))
	for _, d := range pool {
		if !containsDye(picked, d.ID) && !containsDye(remaining, d.ID) {
			remaining = append(remaining, d)
		}
	}

	for len(picked) < n && len(remaining) > 0 {
		i := randomIndex(rnd, len(remaining))
		picked = append(picked, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return picked
}

// excludeDye returns pool without id, keeping the first entry of any
// repeated ID.
func excludeDye(pool []catalog.Dye, id string) []catalog.Dye {
	seen := map[string]bool{id: true}
	out := make([]catalog.Dye, 0, len(pool))
	for _, d := range pool {
		if !seen[d.ID] {
			seen[d.ID] = true
			out = append(out, d)
		}
	}
	return out
}

func containsDye(dyes []catalog.Dye, id string) bool {
	for _, d := range dyes {
		if d.ID == id {
			return true
		}
	}
	return false
}

func candidateDyes(cands []Candidate) []catalog.Dye {
	out := make([]catalog.Dye, len(cands))
	for i, c := range cands {
		out[i] = c.Dye
	}
	return out
}
