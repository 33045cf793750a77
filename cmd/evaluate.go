package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikogura/cv-evaluator/pkg/config"
	"github.com/nikogura/cv-evaluator/pkg/duration"
	"github.com/nikogura/cv-evaluator/pkg/logger"
	"github.com/nikogura/cv-evaluator/pkg/renderer"
	"github.com/nikogura/cv-evaluator/pkg/report"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
	"github.com/nikogura/cv-evaluator/pkg/source"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// summaryReportID names the Markdown/PDF file holding the batch summary.
const summaryReportID = "summary"

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateDir string

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateRequirements string

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateMarkdown bool

//nolint:gochecknoglobals // Cobra boilerplate
var evaluatePDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [resume-file-or-url...]",
	Short: "Score resumes against job requirements",
	Long: `Evaluates one or more resumes and prints a report for each with a batch summary.

Each input is a JSON or YAML file, or an http(s) URL, holding either a single
resume or a batch mapping of candidate id to resume. A resume that cannot be
read or scored gets an error report and the rest of the batch still runs.

Requirements come from --requirements, or requirements_file in the config, and
are merged over the built-in defaults.

Examples:
  # Evaluate a single resume with the default requirements
  cv-evaluator evaluate jane.json

  # Evaluate a directory against a requirements file
  cv-evaluator evaluate --dir ./candidates --requirements reqs.yaml

  # Human-readable output plus Markdown and PDF reports
  cv-evaluator evaluate jane.json --format text --markdown --pdf --output-dir ./reports`,
	RunE: runEvaluate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringVar(&evaluateDir, "dir", "", "Evaluate every .json, .yaml and .yml file in this directory")
	evaluateCmd.Flags().StringVarP(&evaluateRequirements, "requirements", "r", "", "Requirements file or URL (default from config)")
	evaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", formatJSON, "Output format: json or text")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "output", "o", "", "Write the JSON result to this file instead of stdout")
	evaluateCmd.Flags().StringVar(&evaluateOutputDir, "output-dir", "", "Directory for Markdown and PDF reports (default from config)")
	evaluateCmd.Flags().BoolVar(&evaluateMarkdown, "markdown", false, "Write a Markdown report per candidate")
	evaluateCmd.Flags().BoolVar(&evaluatePDF, "pdf", false, "Render each report to PDF with pandoc")
}

func runEvaluate(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()

	if evaluateFormat != formatJSON && evaluateFormat != formatText {
		err = errors.Errorf("unknown format %q: use json or text", evaluateFormat)
		return err
	}

	if len(args) == 0 && evaluateDir == "" {
		err = errors.New("provide resume files or URLs, or use --dir")
		return err
	}

	log := logger.WithFields(appLogger, zap.String("run_id", uuid.New().String()))

	var reqs requirements.Requirements
	reqs, err = loadRequirements(ctx, appConfig)
	if err != nil {
		return err
	}

	items := collectItems(ctx, args, log)
	if evaluateDir != "" {
		var dirItems []resume.Item
		dirItems, err = resume.LoadDir(evaluateDir)
		if err != nil {
			return err
		}
		items = append(items, dirItems...)
	}

	parser := &duration.Parser{
		Now:            time.Now,
		FallbackMonths: appConfig.Scoring.DurationFallbackMonths,
	}
	assembler := report.NewAssembler(reqs, parser, log)

	start := time.Now()
	result := assembler.EvaluateMultiple(items)
	log.Info("evaluated resumes",
		zap.Int("count", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	err = writeResult(result)
	if err != nil {
		return err
	}

	output := resolveOutput(cmd, appConfig.Output)
	if output.Markdown || output.PDF {
		err = writeReports(ctx, result, output, appConfig.Pandoc)
		if err != nil {
			return err
		}
	}

	return err
}

// loadRequirements builds the requirements for a run. The configured required
// sections replace the defaults before the requirements document is applied.
func loadRequirements(ctx context.Context, cfg config.Config) (reqs requirements.Requirements, err error) {
	reqs, err = requirements.Default().Merge(map[string]any{
		"required_sections": cfg.Scoring.RequiredSections,
	})
	if err != nil {
		return reqs, err
	}

	input := evaluateRequirements
	if input == "" {
		input = cfg.RequirementsFile
	}
	if input == "" {
		return reqs, err
	}

	reqs, err = source.Requirements(ctx, input, reqs)
	if err != nil {
		err = errors.Wrap(err, "failed to load requirements")
		return reqs, err
	}

	return reqs, err
}

// collectItems fetches each input. An input that cannot be fetched or parsed
// becomes a failed item so it is reported alongside the others.
func collectItems(ctx context.Context, inputs []string, log *zap.Logger) (items []resume.Item) {
	for _, input := range inputs {
		loaded, err := source.Items(ctx, input)
		if err != nil {
			log.Warn("failed to load resume", zap.String("input", input), zap.Error(err))
			items = append(items, resume.Item{ID: resume.IDFor(input), Err: err})
			continue
		}
		items = append(items, loaded...)
	}
	return items
}

func writeResult(result report.Result) (err error) {
	if evaluateOutput != "" {
		err = writeJSONFile(result, evaluateOutput)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Results saved at: %s\n", evaluateOutput)
		if evaluateFormat == formatJSON {
			return err
		}
	}

	switch evaluateFormat {
	case formatText:
		printText(os.Stdout, result)
	default:
		err = printJSON(os.Stdout, result)
	}
	return err
}

func writeJSONFile(result report.Result, path string) (err error) {
	var data []byte
	data, err = json.MarshalIndent(result, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal results")
		return err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", dir)
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write results: %s", path)
		return err
	}

	return err
}

func printJSON(w io.Writer, result report.Result) (err error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(result)
	if err != nil {
		err = errors.Wrap(err, "failed to encode results")
	}
	return err
}

func printText(w io.Writer, result report.Result) {
	for _, ir := range result.IndividualReports {
		summary := ir.Report.EvaluationSummary
		fmt.Fprintf(w, "%s (%s)\n", ir.CVID, renderer.Label(string(ir.Industry)))
		fmt.Fprintf(w, "  Score: %.1f/100\n", summary.TotalScore)
		fmt.Fprintf(w, "  Decision: %s\n", summary.Decision)
		fmt.Fprintf(w, "  Meets all requirements: %t\n", ir.Report.MeetsAllRequirements)
		if ir.Error != "" {
			fmt.Fprintf(w, "  Error: %s\n", ir.Error)
		}
		if getVerbose() {
			for _, line := range ir.Report.FullFeedback {
				fmt.Fprintf(w, "    - %s\n", line)
			}
		}
		fmt.Fprintln(w)
	}

	s := result.SummaryReport
	fmt.Fprintf(w, "Evaluated %d resume(s)\n", s.TotalCVsEvaluated)
	fmt.Fprintf(w, "  Average score: %.1f\n", s.AverageScore)
	fmt.Fprintf(w, "  Meeting requirements: %d (%.1f%%)\n", s.MeetsRequirementsCount, s.MeetsRequirementsPercentage)
}

// resolveOutput applies command-line flags over the configured output settings.
func resolveOutput(cmd *cobra.Command, output config.OutputConfig) (resolved config.OutputConfig) {
	resolved = output
	if cmd.Flags().Changed("markdown") {
		resolved.Markdown = evaluateMarkdown
	}
	if cmd.Flags().Changed("pdf") {
		resolved.PDF = evaluatePDF
	}
	if evaluateOutputDir != "" {
		resolved.Dir = evaluateOutputDir
	}
	return resolved
}

type reportFile struct {
	id      string
	content string
}

// writeReports writes a Markdown report per candidate plus the batch summary
// and optionally renders each to PDF. Markdown is removed after rendering
// unless Markdown output was asked for too.
func writeReports(ctx context.Context, result report.Result, output config.OutputConfig, pandoc config.PandocConfig) (err error) {
	opts := renderer.PDFOptions{
		TemplatePath: pandoc.TemplatePath,
		ClassPath:    pandoc.ClassFile,
	}

	files := make([]reportFile, 0, len(result.IndividualReports)+1)
	for _, ir := range result.IndividualReports {
		files = append(files, reportFile{id: ir.CVID, content: renderer.Markdown(ir)})
	}
	files = append(files, reportFile{id: summaryReportID, content: renderer.SummaryMarkdown(result.SummaryReport)})

	for _, f := range files {
		mdPath := filepath.Join(output.Dir, renderer.Filename(f.id, ".md"))
		err = renderer.WriteMarkdown(f.content, mdPath)
		if err != nil {
			return err
		}

		if !output.PDF {
			fmt.Fprintf(os.Stderr, "Report saved at: %s\n", mdPath)
			continue
		}

		pdfPath := filepath.Join(output.Dir, renderer.Filename(f.id, ".pdf"))
		renderErr := renderer.RenderPDF(ctx, mdPath, pdfPath, opts)
		if renderErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to render PDF for %s: %v\n", f.id, renderErr)
			fmt.Fprintf(os.Stderr, "Markdown saved at: %s\n", mdPath)
			continue
		}
		fmt.Fprintf(os.Stderr, "PDF saved at: %s\n", pdfPath)

		if !output.Markdown {
			err = renderer.CleanupMarkdown(mdPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to clean up markdown file: %v\n", err)
				err = nil
			}
		}
	}

	return err
}
