package cli

import (
	"fmt"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
	"github.com/jmylchreest/dyeharmony/internal/harmony"
	"github.com/spf13/cobra"
)

// suggestOutput is the JSON form of a suggestion.
type suggestOutput struct {
	Pattern     harmony.Pattern   `json:"pattern"`
	Label       string            `json:"label"`
	Seed        int64             `json:"seed"`
	Primary     catalog.DyeJSON   `json:"primary"`
	Suggestions []catalog.DyeJSON `json:"suggestions,omitempty"`
	Freeform    *harmony.Triple   `json:"freeform,omitempty"`
}

// suggestCmd returns the suggest command.
func suggestCmd(global *globalOptions) *cobra.Command {
	var (
		patternName string
		seed        int64
		seedMode    string
		customName  string
		filterFlags catalogFilterFlags
		genFlags    generatorFlags
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <primary>",
		Short: "Suggest a palette for a primary dye",
		Long: `Suggest two dyes that complete a palette around a primary colour.

The primary may be a catalog dye id or name, a hex colour (#RRGGBB) or an
"r,g,b" triple. Colours that are not in the catalog are treated as custom
colours.

Patterns:
  triadic, split-complementary, analogous, monochromatic, similar,
  contrast, clash, vivid, muted

Examples:
  dyeharmony suggest snow-white -p analogous
  dyeharmony suggest "Soot Black" -p clash --exclude-tag metallic
  dyeharmony suggest "120,85,45" -p monochromatic --seed 42 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := global.logger(cmd.ErrOrStderr())

			pattern, err := harmony.ParsePattern(patternName)
			if err != nil {
				return err
			}

			params, err := genFlags.params()
			if err != nil {
				return err
			}
			vividOpts, err := genFlags.vividOptions()
			if err != nil {
				return err
			}
			filter, err := filterFlags.filter()
			if err != nil {
				return err
			}

			primary, custom, err := customPrimary(args[0], customName)
			if err != nil {
				return err
			}

			var pool []catalog.Dye
			if !custom || !pattern.Freeform() {
				cat, err := global.loadCatalog(cmd.Context(), logger)
				if err != nil {
					return err
				}
				if !custom {
					found, ok := cat.Find(args[0])
					if !ok {
						return fmt.Errorf("no dye or colour matches %q", args[0])
					}
					primary = found
				}
				pool = filter.Apply(cat.Dyes())
			}

			mode, err := harmony.ParseSeedMode(seedMode)
			if err != nil {
				return err
			}
			cfg := harmony.SeedConfig{Mode: mode}
			if cmd.Flags().Changed("seed") {
				cfg = harmony.SeedConfig{Mode: harmony.SeedModeManual, Value: &seed}
			}
			resolved, err := harmony.CalculateSeed(primary, pattern, cfg)
			if err != nil {
				return err
			}

			engine := harmony.New(harmony.WithLogger(logger), harmony.WithParams(params))
			result, err := engine.Suggest(harmony.Request{
				Primary: primary,
				Pattern: pattern,
				Pool:    pool,
				Seed:    &resolved,
				Vivid:   vividOpts,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				out := suggestOutput{
					Pattern:  result.Pattern,
					Label:    result.Pattern.Label(),
					Seed:     result.Seed,
					Primary:  result.Primary.JSON(),
					Freeform: result.Freeform,
				}
				for _, d := range result.Suggestions {
					out.Suggestions = append(out.Suggestions, d.JSON())
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&patternName, "pattern", "p", string(harmony.PatternTriadic), "harmony pattern")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible suggestions")
	cmd.Flags().StringVar(&seedMode, "seed-mode", string(harmony.SeedModeRandom), "seed mode when --seed is not given (random, content)")
	cmd.Flags().StringVar(&customName, "name", "Custom", "display name for a custom primary colour")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")
	filterFlags.register(cmd)
	genFlags.register(cmd)

	return cmd
}

// customPrimary interprets s as a hex or "r,g,b" colour. The second result
// is false when s is neither, in which case it names a catalog dye.
func customPrimary(s, name string) (catalog.Dye, bool, error) {
	rgb, err := colour.ParseHex(s)
	if err != nil {
		rgb, err = catalog.ParseRGB(s)
	}
	if err != nil {
		return catalog.Dye{}, false, nil
	}

	custom, err := catalog.NewCustomColor(name, rgb)
	if err != nil {
		return catalog.Dye{}, true, fmt.Errorf("--name: %w", err)
	}
	return custom.ToDye(), true, nil
}

// printResult writes a suggestion as a table.
func printResult(cmd *cobra.Command, result *harmony.Result) {
	out := cmd.OutOrStdout()

	table := NewTable([]string{"", "ROLE", "NAME", "HEX", "ID"})
	addDye := func(role string, d catalog.Dye) {
		table.AddRow([]string{swatch(d.RGB), role, d.Name, d.Hex(), d.ID})
	}

	addDye("primary", result.Primary)
	if result.Freeform != nil {
		for _, row := range [][2]string{
			{"bridge", result.Freeform.Bridge},
			{"adventure", result.Freeform.Adventure},
		} {
			rgb := colour.MustParseHex(row[1])
			table.AddRow([]string{swatch(rgb), row[0], "", row[1], ""})
		}
	} else {
		for _, d := range result.Suggestions {
			addDye("suggested", d)
		}
	}

	fmt.Fprintf(out, "Pattern: %s (%s)\n", colour.ColourString(result.Primary.RGB, result.Pattern.Label()), result.Pattern)
	fmt.Fprintf(out, "Seed:    %d\n\n", result.Seed)
	fmt.Fprint(out, table.Render())
}
