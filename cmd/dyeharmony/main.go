// Dyeharmony - a colour harmony engine for dye palettes
//
// Dyeharmony suggests dyes from a fixed catalog that complete a palette
// around a primary colour, and generates freeform vivid and muted palettes.
package main

import (
	"os"

	"github.com/jmylchreest/dyeharmony/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
