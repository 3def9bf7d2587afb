// dm-data-renamer - rename SQLite tables and columns to generic names
//
// A small Go CLI tool that replaces every table and column name of a SQLite
// database with sequentially numbered identifiers, with a dry-run preview.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/dmdata/dm-data-renamer/internal/cli"
)

// Version information (set via ldflags at build time)
var (
	version   = "dev"     //nolint:unused // Set via ldflags
	buildTime = "unknown" //nolint:unused // Set via ldflags
)

func main() {
	if err := cli.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
