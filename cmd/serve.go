package cmd

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikogura/cv-evaluator/pkg/duration"
	"github.com/nikogura/cv-evaluator/pkg/httpapi"
	"github.com/nikogura/cv-evaluator/pkg/report"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve resume evaluation over HTTP",
	Long: `Starts an HTTP server that scores resumes posted as JSON.

Endpoints:
  POST /v1/evaluate        {"resume_data": {...}, "requirements": {...}}
  POST /v1/evaluate/batch  {"resumes": {"id": {...}}, "requirements": {...}}
  GET  /healthz

Requirements in a request are merged over the server's requirements, which
come from requirements_file in the config or the built-in defaults.

Example:
  cv-evaluator serve --addr :9090`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()

	var reqs requirements.Requirements
	reqs, err = loadRequirements(ctx, appConfig)
	if err != nil {
		return err
	}

	if appConfig.Logging.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	parser := duration.NewParser()
	parser.FallbackMonths = appConfig.Scoring.DurationFallbackMonths
	assembler := report.NewAssembler(reqs, parser, appLogger)

	addr := appConfig.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      httpapi.NewServer(assembler, appLogger, version).Router(),
		ReadTimeout:  appConfig.Server.ReadTimeout,
		WriteTimeout: appConfig.Server.WriteTimeout,
	}

	err = httpapi.Run(ctx, srv, appLogger)
	if err != nil {
		err = errors.Wrap(err, "failed to serve")
		return err
	}

	appLogger.Info("server exited", zap.String("addr", addr))
	return err
}
