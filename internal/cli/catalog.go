package cli

import (
	"fmt"

	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
	"github.com/spf13/cobra"
)

// catalogCmd returns the catalog command group.
func catalogCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the dye catalog",
	}
	cmd.AddCommand(catalogListCmd(global), catalogShowCmd(global))
	return cmd
}

func catalogListCmd(global *globalOptions) *cobra.Command {
	var (
		filterFlags catalogFilterFlags
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog dyes",
		Long: `List the dyes in the catalog, optionally filtered.

Examples:
  dyeharmony catalog list --category blue
  dyeharmony catalog list --exclude-tag metallic --saturation 20,100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := filterFlags.filter()
			if err != nil {
				return err
			}
			cat, err := global.loadCatalog(cmd.Context(), global.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			dyes := filter.Apply(cat.Dyes())

			if jsonOutput {
				out := make([]catalog.DyeJSON, len(dyes))
				for i, d := range dyes {
					out[i] = d.JSON()
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			table := NewTable([]string{"", "ID", "NAME", "CATEGORY", "HEX", "HSV"})
			for _, d := range dyes {
				table.AddRow([]string{swatch(d.RGB), d.ID, d.Name, string(d.Category), d.Hex(), formatHSV(d.HSV())})
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, table.Render())
			fmt.Fprintf(out, "\n%d of %d dyes\n", len(dyes), cat.Len())
			return nil
		},
	}

	filterFlags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")
	return cmd
}

func catalogShowCmd(global *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Show every colour representation of a dye",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := global.loadCatalog(cmd.Context(), global.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			d, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("no dye matches %q", args[0])
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), d.JSON())
			}

			lab := d.Oklab()
			lch := d.Oklch()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, colour.FormatColourWithLabel(d.RGB, d.Name, swatchWidth))
			fmt.Fprintf(out, "  ID:       %s\n", d.ID)
			fmt.Fprintf(out, "  Category: %s\n", d.Category)
			fmt.Fprintf(out, "  Hex:      %s\n", d.Hex())
			fmt.Fprintf(out, "  RGB:      %s\n", catalog.FormatRGB(d.RGB))
			fmt.Fprintf(out, "  HSV:      %s\n", formatHSV(d.HSV()))
			fmt.Fprintf(out, "  Oklab:    L %.4f  a %.4f  b %.4f\n", lab.L, lab.A, lab.B)
			fmt.Fprintf(out, "  Oklch:    L %.4f  C %.4f  h %.1f°\n", lch.L, lch.C, lch.H)
			if len(d.Tags) > 0 {
				fmt.Fprintf(out, "  Tags:     %v\n", d.Tags)
			}
			if d.Lodestone != "" {
				fmt.Fprintf(out, "  Link:     %s\n", d.Lodestone)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")
	return cmd
}
