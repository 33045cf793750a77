package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikogura/cv-evaluator/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Writes a commented default cv-evaluator.yaml to --config, or to
$HOME/.cv-evaluator/cv-evaluator.yaml. An existing file is never overwritten.`,
	// The config file may not exist yet, so skip loading it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) { return err },
	RunE:              runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Printf("Config written to: %s\n", path)
	return err
}
