package renderer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteMarkdown(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "jane-report.md")
	testContent := "# Candidate Report: Jane Doe\n\nThis is a test."

	err := WriteMarkdown(testContent, testFile)
	if err != nil {
		t.Fatalf("Failed to write markdown: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(data) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(data))
	}
}

func TestWriteMarkdownCreatesDir(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "reports", "batch", "jane-report.md")

	err := WriteMarkdown("test", nestedPath)
	if err != nil {
		t.Fatalf("Failed to write markdown: %v", err)
	}

	_, err = os.Stat(nestedPath)
	if err != nil {
		t.Errorf("Expected report in nested directory: %v", err)
	}
}

func TestCleanupMarkdown(t *testing.T) {
	tmpDir := t.TempDir()
	reports := []string{
		filepath.Join(tmpDir, Filename("jane", ".md")),
		filepath.Join(tmpDir, Filename("summary", ".md")),
	}
	for _, path := range reports {
		err := WriteMarkdown("# report", path)
		if err != nil {
			t.Fatalf("Failed to create report: %v", err)
		}
	}

	err := CleanupMarkdown(reports...)
	if err != nil {
		t.Fatalf("Failed to cleanup: %v", err)
	}

	for _, path := range reports {
		_, err = os.Stat(path)
		if !os.IsNotExist(err) {
			t.Errorf("Expected %s to be removed", filepath.Base(path))
		}
	}

	err = CleanupMarkdown(reports[0])
	if err == nil {
		t.Error("Expected error removing an already removed report, got nil")
	}
}

func TestValidateFiles(t *testing.T) {
	tmpDir := t.TempDir()
	template := filepath.Join(tmpDir, "report.latex")
	err := os.WriteFile(template, []byte(`$body$`), 0600)
	if err != nil {
		t.Fatalf("Failed to create template: %v", err)
	}

	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{name: "no files", paths: nil, wantErr: false},
		{name: "existing template", paths: []string{template}, wantErr: false},
		{name: "missing class", paths: []string{filepath.Join(tmpDir, "report.cls")}, wantErr: true},
		{name: "one of several missing", paths: []string{template, "/nonexistent/report.md"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFiles(tt.paths...)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFiles() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckPandocExists(t *testing.T) {
	// This test will pass if pandoc is installed, skip otherwise.
	err := checkPandocExists(context.Background())
	if err != nil {
		t.Skip("Pandoc not installed, skipping test")
	}
}

func TestPandocArgs(t *testing.T) {
	tests := []struct {
		name string
		opts PDFOptions
		want []string
	}{
		{
			name: "default template",
			opts: PDFOptions{},
			want: []string{"-f", "markdown", "-t", "pdf", "-o", "out.pdf", "in.md"},
		},
		{
			name: "custom template",
			opts: PDFOptions{TemplatePath: "report.latex", ClassPath: "report.cls"},
			want: []string{"-f", "markdown", "-t", "pdf", "-o", "out.pdf", "--template", "report.latex", "in.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pandocArgs("in.md", "out.pdf", tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected arg %d to be '%s', got '%s'", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestRenderPDFMissingMarkdown(t *testing.T) {
	err := checkPandocExists(context.Background())
	if err != nil {
		t.Skip("Pandoc not installed, skipping test")
	}

	err = RenderPDF(context.Background(), "/nonexistent/report.md", filepath.Join(t.TempDir(), "out.pdf"), PDFOptions{})
	if err == nil {
		t.Error("Expected error for missing markdown file, got nil")
	}
}
