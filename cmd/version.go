package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the program and built-in catalog versions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "triage", version)
		fmt.Fprintln(cmd.OutOrStdout(), "catalog", catalog.SeedVersion, "(supports", catalog.SupportedMajor+".x)")
	},
}
