package cli

import (
	"fmt"

	"github.com/jmylchreest/dyeharmony/internal/harmony"
	"github.com/spf13/cobra"
)

// patternsCmd returns the patterns command.
func patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List harmony patterns",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := NewTable([]string{"PATTERN", "LABEL", "DESCRIPTION"})
			table.SetColumnMaxWidth(2, 50)
			for _, p := range harmony.Patterns() {
				table.AddRow([]string{p.String(), p.Label(), p.Description()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
