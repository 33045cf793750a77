// Package renderer writes evaluation reports as Markdown and converts them to PDF with pandoc.
package renderer

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikogura/cv-evaluator/pkg/report"
)

//nolint:gochecknoglobals // Compiled pattern
var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// Label turns a snake_case identifier such as an industry or factor name into a title.
func Label(name string) (label string) {
	label = cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
	return label
}

// Filename builds a file name for a candidate report from its id.
func Filename(id, ext string) (name string) {
	slug := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.ToLower(id), "-"), "-")
	if slug == "" {
		slug = "candidate"
	}
	name = slug + "-report" + ext
	return name
}

// Markdown renders one candidate report.
func Markdown(ir report.IndividualReport) (content string) {
	var b strings.Builder
	r := ir.Report
	es := r.EvaluationSummary
	info := r.CandidateInfo

	fmt.Fprintf(&b, "# Candidate Report: %s\n\n", info.Name)
	fmt.Fprintf(&b, "**CV ID:** %s  \n", ir.CVID)
	fmt.Fprintf(&b, "**Industry:** %s  \n", Label(string(ir.Industry)))
	fmt.Fprintf(&b, "**Total Score:** %.1f/100  \n", es.TotalScore)
	fmt.Fprintf(&b, "**Decision:** %s\n\n", es.Decision)
	fmt.Fprintf(&b, "%s\n\n", es.Recommendation)

	if ir.Error != "" {
		fmt.Fprintf(&b, "> Evaluation failed: %s\n\n", ir.Error)
	}

	b.WriteString("## Candidate Information\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Email | %s |\n", info.Email)
	fmt.Fprintf(&b, "| Phone | %s |\n", info.Phone)
	fmt.Fprintf(&b, "| Experience | %.1f years |\n", info.ExperienceYears)
	fmt.Fprintf(&b, "| Highest Education | %s |\n\n", orNone(info.HighestEducation))

	if len(r.ScoreBreakdown) > 0 {
		b.WriteString("## Score Breakdown\n\n")
		b.WriteString("| Factor | Score |\n|---|---|\n")
		for _, name := range slices.Sorted(maps.Keys(r.ScoreBreakdown)) {
			fmt.Fprintf(&b, "| %s | %.1f |\n", Label(name), r.ScoreBreakdown[name])
		}
		b.WriteString("\n")
	}

	b.WriteString("## Requirements\n\n")
	checks := ir.MeetsRequirements
	writeCheck(&b, "Minimum experience", checks.MinExperience)
	writeCheck(&b, "Required skills", checks.RequiredSkills)
	writeCheck(&b, "Education level", checks.EducationLevel)
	writeCheck(&b, "Keywords", checks.Keywords)
	writeCheck(&b, "Industry minimums", checks.IndustrySpecific)
	b.WriteString("\n")

	if len(r.SkillsMatch.Matching)+len(r.SkillsMatch.Missing) > 0 {
		b.WriteString("## Skills Match\n\n")
		fmt.Fprintf(&b, "**Matching:** %s  \n", orNone(strings.Join(r.SkillsMatch.Matching, ", ")))
		fmt.Fprintf(&b, "**Missing:** %s\n\n", orNone(strings.Join(r.SkillsMatch.Missing, ", ")))
	}

	writeList(&b, "Strengths", es.Strengths)
	writeList(&b, "Weaknesses", es.Weaknesses)
	writeList(&b, "Feedback", r.FullFeedback)

	content = b.String()
	return content
}

// SummaryMarkdown renders the batch summary.
func SummaryMarkdown(summary report.SummaryReport) (content string) {
	var b strings.Builder

	b.WriteString("# Evaluation Summary\n\n")
	fmt.Fprintf(&b, "**Résumés evaluated:** %d  \n", summary.TotalCVsEvaluated)
	fmt.Fprintf(&b, "**Average score:** %.1f  \n", summary.AverageScore)
	fmt.Fprintf(&b, "**Meeting all requirements:** %d (%.1f%%)\n\n", summary.MeetsRequirementsCount, summary.MeetsRequirementsPercentage)

	writeDistribution(&b, "Industries", summary.IndustryDistribution, Label)
	writeDistribution(&b, "Decisions", summary.DecisionDistribution, func(s string) string { return s })
	writeCounts(&b, "Common Strengths", summary.CommonStrengths)
	writeCounts(&b, "Common Weaknesses", summary.CommonWeaknesses)

	content = b.String()
	return content
}

func writeCheck(b *strings.Builder, name string, ok bool) {
	mark := " "
	if ok {
		mark = "x"
	}
	fmt.Fprintf(b, "- [%s] %s\n", mark, name)
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeDistribution(b *strings.Builder, title string, dist map[string]int, label func(string) string) {
	if len(dist) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n| Value | Count |\n|---|---|\n", title)
	for _, key := range slices.Sorted(maps.Keys(dist)) {
		fmt.Fprintf(b, "| %s | %d |\n", label(key), dist[key])
	}
	b.WriteString("\n")
}

func writeCounts(b *strings.Builder, title string, counts []report.Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, c := range counts {
		fmt.Fprintf(b, "- %s (%d)\n", c.Text, c.Count)
	}
	b.WriteString("\n")
}

func orNone(value string) (s string) {
	s = value
	if s == "" {
		s = "None"
	}
	return s
}
