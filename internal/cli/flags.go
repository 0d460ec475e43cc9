package cli

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/harmony"
	"github.com/spf13/cobra"
)

// catalogFilterFlags narrows the candidate pool.
type catalogFilterFlags struct {
	category    string
	excludeTags []string
	hue         string
	saturation  string
	value       string
}

func (f *catalogFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "only use dyes from this category")
	cmd.Flags().StringSliceVar(&f.excludeTags, "exclude-tag", nil, "exclude dyes carrying these tags (e.g. metallic)")
	cmd.Flags().StringVar(&f.hue, "hue", "", "HSV hue range min,max in degrees")
	cmd.Flags().StringVar(&f.saturation, "saturation", "", "HSV saturation range min,max in percent")
	cmd.Flags().StringVar(&f.value, "value", "", "HSV value range min,max in percent")
}

func (f *catalogFilterFlags) filter() (catalog.Filter, error) {
	filter := catalog.DefaultFilter()
	filter.ExcludeTags = f.excludeTags

	if f.category != "" {
		cat := catalog.Category(f.category)
		if !slices.Contains(catalog.Categories(), cat) {
			return filter, fmt.Errorf("unknown category %q", f.category)
		}
		filter.Category = cat
	}

	for _, r := range []struct {
		flag  string
		value string
		dst   *catalog.Range
	}{
		{"hue", f.hue, &filter.Hue},
		{"saturation", f.saturation, &filter.Saturation},
		{"value", f.value, &filter.Value},
	} {
		if r.value == "" {
			continue
		}
		parsed, err := parseRange(r.value)
		if err != nil {
			return filter, fmt.Errorf("--%s: %w", r.flag, err)
		}
		*r.dst = parsed
	}

	return filter, nil
}

// generatorFlags configure the vivid/muted generator.
type generatorFlags struct {
	background string
	hueRange   string
	paramsPath string
}

func (g *generatorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.background, "background", harmony.DefaultBackground, "background colour generated colours must contrast with")
	cmd.Flags().StringVar(&g.hueRange, "hue-range", "", "restrict the generated hue offset to min,max degrees")
	cmd.Flags().StringVar(&g.paramsPath, "params", "", "TOML file overriding generator parameters")
}

func (g *generatorFlags) params() (harmony.Params, error) {
	if g.paramsPath == "" {
		return harmony.DefaultParams(), nil
	}
	return harmony.LoadParams(g.paramsPath)
}

func (g *generatorFlags) vividOptions() (harmony.VividOptions, error) {
	opts := harmony.VividOptions{Background: g.background}
	if g.hueRange == "" {
		return opts, nil
	}

	r, err := parseRange(g.hueRange)
	if err != nil {
		return opts, fmt.Errorf("--hue-range: %w", err)
	}
	hr := harmony.HueRange{Min: r.Min, Max: r.Max}
	if !hr.Valid() {
		return opts, fmt.Errorf("--hue-range: %g,%g must lie within 0,360", r.Min, r.Max)
	}
	opts.HueOffsetRange = &hr
	return opts, nil
}
