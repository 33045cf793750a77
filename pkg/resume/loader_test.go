package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleJSON = `{
  "summary": "Compliance analyst with audit background",
  "experience": [
    {"title": "Analyst", "company": "Bank", "duration": "2 years", "description": "Managed audits"}
  ],
  "education": [
    {"degree": "Bachelor of Finance", "institution": "State University", "year": "2018"}
  ],
  "skills": ["GAAP", "Excel"]
}`

func TestParseDocumentSingleRecord(t *testing.T) {
	items, err := ParseDocument("jane", []byte(singleJSON), FormatJSON)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "jane", item.ID)
	assert.NoError(t, item.Err)
	assert.Equal(t, "Compliance analyst with audit background", item.Record.Summary)
	assert.Len(t, item.Record.Experience, 1)
	assert.Equal(t, []string{"GAAP", "Excel"}, item.Record.Skills)
	assert.Equal(t, []string{"summary", "experience", "education", "skills"}, item.Record.Sections())
}

func TestParseDocumentBatchKeepsOrderAndIsolatesBadEntries(t *testing.T) {
	doc := `{
  "zeta": {"summary": "first"},
  "alpha": {"skills": "not a list"},
  "mid": {"summary": "third"}
}`

	items, err := ParseDocument("batch", []byte(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "zeta", items[0].ID)
	assert.Equal(t, "alpha", items[1].ID)
	assert.Equal(t, "mid", items[2].ID)

	assert.NoError(t, items[0].Err)
	assert.Error(t, items[1].Err)
	assert.NoError(t, items[2].Err)
	assert.Equal(t, "third", items[2].Record.Summary)
}

func TestParseBatchTreatsSectionNamesAsIDs(t *testing.T) {
	doc := `{"summary": {"summary": "candidate named summary"}, "bob": {"skills": ["Go"]}}`

	items, err := ParseBatch([]byte(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "summary", items[0].ID)
	assert.Equal(t, "candidate named summary", items[0].Record.Summary)
	assert.Equal(t, "bob", items[1].ID)
	assert.Equal(t, []string{"Go"}, items[1].Record.Skills)
}

func TestParseDocumentCapitalisedKeys(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{
			name:   "json",
			doc:    `{"Summary": "Jane Doe", "Experience": [{"title": "Lead"}], "Education": [{"degree": "BA"}], "Skills": ["Excel"]}`,
			format: FormatJSON,
		},
		{
			name:   "yaml",
			doc:    "Summary: Jane Doe\nExperience:\n  - title: Lead\nEducation:\n  - degree: BA\nSkills:\n  - Excel\n",
			format: FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseDocument("jane", []byte(tt.doc), tt.format)
			require.NoError(t, err)
			require.Len(t, items, 1)

			item := items[0]
			assert.Equal(t, "jane", item.ID)
			require.NoError(t, item.Err)
			assert.Equal(t, "Jane Doe", item.Record.Summary)
			assert.Equal(t, "Lead", item.Record.Experience[0].Title)
			assert.Equal(t, []string{"Excel"}, item.Record.Skills)
			assert.Equal(t, []string{"summary", "experience", "education", "skills"}, item.Record.Sections())
		})
	}
}

func TestParseDocumentYAML(t *testing.T) {
	doc := `
skills:
  - Makeup application
experience:
  - title: Artist
    duration: 06/2020 to 06/2022
education:
  - degree: Associate
`
	items, err := ParseDocument("artist", []byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, items, 1)

	record := items[0].Record
	assert.Equal(t, []string{"skills", "experience", "education"}, record.Sections())
	assert.Equal(t, "06/2020 to 06/2022", record.Experience[0].Duration)
	assert.Equal(t, "Associate", record.Education[0].Degree)
}

func TestParseDocumentRejectsNonObject(t *testing.T) {
	_, err := ParseDocument("list", []byte(`[1, 2]`), FormatJSON)
	assert.Error(t, err)

	_, err = ParseDocument("list", []byte("- a\n- b\n"), FormatYAML)
	assert.Error(t, err)
}

func TestRecordDefaults(t *testing.T) {
	var record Record

	assert.Empty(t, record.Sections())
	assert.False(t, record.HasSection(SectionSummary))
	assert.False(t, record.HasSection("references"))
	assert.Empty(t, record.Descriptions())

	record.Skills = []string{"Excel"}
	record.Summary = "Analyst"
	assert.True(t, record.HasSection(SectionSkills))
	assert.Equal(t, []string{SectionSummary, SectionSkills}, record.Sections())
}

func TestFormatAndID(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		id     string
	}{
		{name: "/tmp/jane.json", format: FormatJSON, id: "jane"},
		{name: "resumes/bob.YAML", format: FormatYAML, id: "bob"},
		{name: "carol.yml", format: FormatYAML, id: "carol"},
		{name: "https://example.com/cv/dan", format: FormatJSON, id: "dan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFor(tt.name); got != tt.format {
				t.Errorf("Expected format %d, got %d", tt.format, got)
			}
			if got := IDFor(tt.name); got != tt.id {
				t.Errorf("Expected id '%s', got '%s'", tt.id, got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "jane.json")

	err := os.WriteFile(path, []byte(singleJSON), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load resume: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	if items[0].ID != "jane" {
		t.Errorf("Expected id 'jane', got '%s'", items[0].ID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/resume.json")
	if err == nil {
		t.Error("Expected error for nonexistent file, got nil")
	}
}

func TestLoadDir(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"a.json":         singleJSON,
		"b.yaml":         "summary: yaml candidate\n",
		"broken.json":    "{not json",
		"notes.txt":      "ignored",
		".hidden.json":   singleJSON,
		".git/head.json": singleJSON,
		"nested/c.json":  `{"summary": "nested"}`,
	}

	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		err := os.MkdirAll(filepath.Dir(path), 0750)
		require.NoError(t, err)
		err = os.WriteFile(path, []byte(content), 0600)
		require.NoError(t, err)
	}

	items, err := LoadDir(tmpDir)
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	failed := map[string]bool{}
	for _, item := range items {
		ids = append(ids, item.ID)
		failed[item.ID] = item.Err != nil
	}

	assert.Equal(t, []string{"a", "b", "broken", "c"}, ids)
	assert.True(t, failed["broken"])
	assert.False(t, failed["a"])
	assert.False(t, failed["c"])
}
