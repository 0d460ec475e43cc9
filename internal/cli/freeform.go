package cli

import (
	"fmt"

	"github.com/jmylchreest/dyeharmony/internal/colour"
	"github.com/jmylchreest/dyeharmony/internal/harmony"
	"github.com/spf13/cobra"
)

type freeformKind struct {
	pattern  harmony.Pattern
	generate func(string, harmony.Random, harmony.VividOptions, harmony.Params) (harmony.Triple, error)
	short    string
	long     string
}

var (
	freeformVivid = freeformKind{
		pattern:  harmony.PatternVivid,
		generate: harmony.GenerateVivid,
		short:    "Generate a vivid freeform palette from a hex colour",
		long: `Generate a high-contrast palette around a base colour.

The adventure colour favours complementary and triadic hue offsets and pushes
lightness toward the opposite extreme. The bridge colour sits between base and
adventure. Both are nudged until they contrast with the background.`,
	}
	freeformMuted = freeformKind{
		pattern:  harmony.PatternMuted,
		generate: harmony.GenerateMuted,
		short:    "Generate a muted freeform palette from a hex colour",
		long: `Generate a subdued palette around a base colour.

The adventure colour favours analogous and medium hue offsets with capped
chroma. The bridge colour is the calm colour furthest from both base and
adventure.`,
	}
)

// freeformCmd returns the vivid or muted command.
func freeformCmd(global *globalOptions, kind freeformKind) *cobra.Command {
	var (
		seed       int64
		genFlags   generatorFlags
		jsonOutput bool
	)

	name := kind.pattern.String()
	cmd := &cobra.Command{
		Use:   name + " <hex>",
		Short: kind.short,
		Long: kind.long + fmt.Sprintf(`

Examples:
  dyeharmony %[1]s "#336699"
  dyeharmony %[1]s "#336699" --seed 42 --background "#1E1E1E"
  dyeharmony %[1]s "#336699" --hue-range 150,210 --json`, name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := global.logger(cmd.ErrOrStderr()).Named(name)

			params, err := genFlags.params()
			if err != nil {
				return err
			}
			opts, err := genFlags.vividOptions()
			if err != nil {
				return err
			}

			var rnd harmony.Random
			if cmd.Flags().Changed("seed") {
				rnd = harmony.NewSeededRandom(seed)
				logger.Debug("using seeded generator", "seed", seed)
			} else {
				rnd = harmony.NewRandom()
			}

			triple, err := kind.generate(args[0], rnd, opts, params)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), triple)
			}

			table := NewTable([]string{"", "ROLE", "HEX"})
			for _, row := range [][2]string{
				{"base", triple.Base},
				{"bridge", triple.Bridge},
				{"adventure", triple.Adventure},
			} {
				table.AddRow([]string{swatch(colour.MustParseHex(row[1])), row[0], row[1]})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible palette")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")
	genFlags.register(cmd)

	return cmd
}
