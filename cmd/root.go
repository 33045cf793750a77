package cmd

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikogura/cv-evaluator/pkg/config"
	"github.com/nikogura/cv-evaluator/pkg/logger"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var jsonLogs bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // populated by PersistentPreRunE
var appConfig config.Config

//nolint:gochecknoglobals // populated by PersistentPreRunE
var appLogger = zap.NewNop()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cv-evaluator",
	Short: "Score resumes against job requirements",
	Long: `cv-evaluator scores structured resumes against a set of job requirements.

Each resume is classified into an industry, scored on general and
industry-specific factors, and given a hiring decision with feedback.
Batches produce a summary with score averages and common strengths
and weaknesses.

Configuration is read from cv-evaluator.yaml in the working directory or
~/.cv-evaluator, then from CV_EVALUATOR_* environment variables and a .env
file when present.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Log as JSON")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./cv-evaluator.yaml or $HOME/.cv-evaluator/cv-evaluator.yaml)")
}

func setup(cmd *cobra.Command, args []string) (err error) {
	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		err = errors.Wrap(err, "failed to load .env")
		return err
	}

	v, err := config.NewViper(getConfigFile())
	if err != nil {
		return err
	}

	err = v.BindPFlag("logging.debug", rootCmd.PersistentFlags().Lookup("verbose"))
	if err != nil {
		err = errors.Wrap(err, "failed to bind verbose flag")
		return err
	}

	err = v.BindPFlag("logging.json", rootCmd.PersistentFlags().Lookup("json"))
	if err != nil {
		err = errors.Wrap(err, "failed to bind json flag")
		return err
	}

	appConfig, err = config.Decode(v)
	if err != nil {
		return err
	}

	appLogger, err = logger.New(appConfig.Logging.JSON, appConfig.Logging.Debug)
	if err != nil {
		return err
	}

	if cfgUsed := v.ConfigFileUsed(); cfgUsed != "" {
		appLogger.Debug("loaded config", zap.String("path", cfgUsed))
	}

	return err
}

func teardown(cmd *cobra.Command, args []string) (err error) {
	// Sync returns EINVAL when stderr is a terminal.
	_ = appLogger.Sync()
	return err
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose || appConfig.Logging.Debug
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
