package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X github.com/nikogura/cv-evaluator/cmd.version=...".
//
//nolint:gochecknoglobals // set by the linker
var version = "dev"

//nolint:gochecknoglobals // Cobra boilerplate
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) { return err },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cv-evaluator %s\n", version)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(versionCmd)
}
