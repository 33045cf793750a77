package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikogura/cv-evaluator/pkg/config"
	"github.com/nikogura/cv-evaluator/pkg/report"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
)

func sampleResult() (result report.Result) {
	assembler := report.NewAssembler(requirements.Default(), nil, nil)
	result = assembler.EvaluateMultiple([]resume.Item{
		{ID: "jane", Record: resume.Record{Summary: "Jane Doe", Skills: []string{"Customer Service"}}},
		{ID: "broken", Err: os.ErrNotExist},
	})
	return result
}

func TestLoadRequirements(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "reqs.yaml")
	err := os.WriteFile(path, []byte("min_experience_years: 5\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write requirements: %v", err)
	}

	evaluateRequirements = ""
	cfg := config.Config{
		RequirementsFile: path,
		Scoring:          config.ScoringConfig{RequiredSections: []string{"summary", "skills"}},
	}

	reqs, err := loadRequirements(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to load requirements: %v", err)
	}

	if reqs.MinExperienceYears != 5 {
		t.Errorf("Expected min experience 5, got %v", reqs.MinExperienceYears)
	}

	if strings.Join(reqs.RequiredSections, ",") != "summary,skills" {
		t.Errorf("Expected configured required sections, got %v", reqs.RequiredSections)
	}
}

func TestLoadRequirementsFlagWins(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "reqs.json")
	err := os.WriteFile(path, []byte(`{"keywords": ["audit"]}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write requirements: %v", err)
	}

	evaluateRequirements = path
	t.Cleanup(func() { evaluateRequirements = "" })

	cfg := config.Config{
		RequirementsFile: "/nonexistent/reqs.yaml",
		Scoring:          config.ScoringConfig{RequiredSections: []string{"summary"}},
	}

	reqs, err := loadRequirements(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to load requirements: %v", err)
	}

	if len(reqs.Keywords) != 1 || reqs.Keywords[0] != "audit" {
		t.Errorf("Expected keywords [audit], got %v", reqs.Keywords)
	}
}

func TestCollectItemsIsolatesFailures(t *testing.T) {
	tmpDir := t.TempDir()
	good := filepath.Join(tmpDir, "jane.json")
	err := os.WriteFile(good, []byte(`{"summary": "Jane Doe"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write resume: %v", err)
	}

	items := collectItems(context.Background(), []string{good, filepath.Join(tmpDir, "missing.json")}, zap.NewNop())

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	if items[0].ID != "jane" || items[0].Err != nil {
		t.Errorf("Expected jane to load, got id %s err %v", items[0].ID, items[0].Err)
	}

	if items[1].ID != "missing" || items[1].Err == nil {
		t.Errorf("Expected missing to fail, got id %s err %v", items[1].ID, items[1].Err)
	}
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	printText(&buf, sampleResult())

	out := buf.String()
	for _, want := range []string{"jane (", "broken (Unknown)", "Decision: Error", "Evaluated 2 resume(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestResolveOutput(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().BoolVar(&evaluateMarkdown, "markdown", false, "")
	cmd.Flags().BoolVar(&evaluatePDF, "pdf", false, "")
	t.Cleanup(func() {
		evaluateMarkdown = false
		evaluatePDF = false
		evaluateOutputDir = ""
	})

	err := cmd.Flags().Set("markdown", "true")
	if err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}
	evaluateOutputDir = "/tmp/out"

	resolved := resolveOutput(cmd, config.OutputConfig{Dir: "./reports", PDF: true})

	if !resolved.Markdown {
		t.Error("Expected markdown from flag")
	}

	if !resolved.PDF {
		t.Error("Expected pdf from config when flag is unset")
	}

	if resolved.Dir != "/tmp/out" {
		t.Errorf("Expected dir /tmp/out, got %s", resolved.Dir)
	}
}

func TestWriteReportsMarkdown(t *testing.T) {
	tmpDir := t.TempDir()

	err := writeReports(context.Background(), sampleResult(), config.OutputConfig{Dir: tmpDir, Markdown: true}, config.PandocConfig{})
	if err != nil {
		t.Fatalf("Failed to write reports: %v", err)
	}

	for _, name := range []string{"jane-report.md", "broken-report.md", "summary-report.md"} {
		_, statErr := os.Stat(filepath.Join(tmpDir, name))
		if statErr != nil {
			t.Errorf("Expected %s to exist: %v", name, statErr)
		}
	}
}
