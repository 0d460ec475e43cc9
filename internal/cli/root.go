// Package cli provides the command-line interface for dyeharmony.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/dyeharmony/internal/catalog"
	"github.com/jmylchreest/dyeharmony/internal/colour"
	"github.com/jmylchreest/dyeharmony/internal/security"
	"github.com/jmylchreest/dyeharmony/internal/version"
	"github.com/spf13/cobra"
)

// CatalogEnvVar names the environment variable holding the default catalog.
const CatalogEnvVar = "DYEHARMONY_CATALOG"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	catalog  string
	insecure bool
	verbose  bool
	noColour bool
}

// NewRootCmd builds the dyeharmony command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "dyeharmony",
		Short: "Suggest harmonious dye palettes",
		Long: `dyeharmony recommends colour palettes built from a fixed catalog of dyes.

Pick a primary dye (or any hex colour) and a harmony pattern, and dyeharmony
finds two catalog dyes that complete the palette. The vivid and muted patterns
generate freeform colours instead of catalog matches.

Examples:
  # Triadic palette for a catalog dye
  dyeharmony suggest "Dalamud Red" --catalog dyes.json

  # Reproducible clash palette for a custom colour
  dyeharmony suggest "#7A4E2D" -p clash --seed 1234

  # Freeform vivid palette, no catalog required
  dyeharmony vivid "#336699"`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			colour.DisableColourOutput = opts.noColour || !colour.SupportsANSIColours()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "catalog file or URL (default $"+CatalogEnvVar+")")
	rootCmd.PersistentFlags().BoolVar(&opts.insecure, "insecure", false, "allow http:// and private-network catalog URLs")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", false, "disable colour swatches")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		versionCmd(),
		suggestCmd(opts),
		freeformCmd(opts, freeformVivid),
		freeformCmd(opts, freeformMuted),
		catalogCmd(opts),
		patternsCmd(),
	)

	return rootCmd
}

// versionCmd returns the version command.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// logger returns the command logger writing to w.
func (o *globalOptions) logger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	if o.verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "dyeharmony",
		Output: w,
		Level:  level,
	})
}

// catalogSource resolves the catalog flag with the environment fallback.
func (o *globalOptions) catalogSource() (string, error) {
	if o.catalog != "" {
		return o.catalog, nil
	}
	if env := os.Getenv(CatalogEnvVar); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no catalog specified: use --catalog or set %s", CatalogEnvVar)
}

// loadCatalog loads the configured catalog.
func (o *globalOptions) loadCatalog(ctx context.Context, logger hclog.Logger) (*catalog.Catalog, error) {
	source, err := o.catalogSource()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cat, err := catalog.Load(ctx, source, catalog.LoadOptions{
		URLPolicy: security.URLPolicy{
			AllowInsecure:     o.insecure,
			AllowPrivateHosts: o.insecure,
		},
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded catalog", "source", source, "dyes", cat.Len())
	return cat, nil
}
