package scorer

import (
	"math"
	"slices"
	"strings"

	"github.com/nikogura/cv-evaluator/pkg/match"
	"github.com/nikogura/cv-evaluator/pkg/resume"
)

// Base factor names.
const (
	SectionCompleteness  = "section_completeness"
	ExperienceQuality    = "experience_quality"
	EducationQuality     = "education_quality"
	SkillsRelevance      = "skills_relevance"
	AchievementsQuality  = "achievements_quality"
	KeywordMatching      = "keyword_matching"
	StructureQuality     = "structure_quality"
	TotalExperienceYears = "total_experience_years"
)

// BaseFactors are scored for every résumé regardless of industry.
//
//nolint:gochecknoglobals // Scoring configuration constants
var BaseFactors = []Factor{
	{Name: SectionCompleteness, Score: sectionCompleteness},
	{Name: ExperienceQuality, Score: experienceQuality},
	{Name: EducationQuality, Score: educationQuality},
	{Name: SkillsRelevance, Score: skillsRelevance},
	{Name: AchievementsQuality, Score: achievementsQuality},
	{Name: KeywordMatching, Score: keywordMatching},
	{Name: StructureQuality, Score: structureQuality},
}

func sectionCompleteness(in *Input) (score float64) {
	required := uniqueSections(in.Requirements.RequiredSections)
	if len(required) == 0 {
		score = 100
		return score
	}

	var present int
	for _, section := range required {
		if in.Record.HasSection(section) {
			present++
		}
	}

	score = percent(present, len(required))
	return score
}

// MissingSections lists required sections that are absent or empty, in requirement order.
func MissingSections(record *resume.Record, required []string) (missing []string) {
	for _, section := range required {
		if !record.HasSection(section) {
			missing = append(missing, section)
		}
	}
	return missing
}

func uniqueSections(sections []string) (unique []string) {
	for _, s := range sections {
		if !slices.Contains(unique, s) {
			unique = append(unique, s)
		}
	}
	return unique
}

// experienceQuality averages a per-entry score built from tenure, action
// verbs, industry vocabulary, red flags and quantified results.
func experienceQuality(in *Input) (score float64) {
	if len(in.Record.Experience) == 0 {
		return score
	}

	var total float64
	for _, exp := range in.Record.Experience {
		entry := 50.0

		months := in.Durations.Months(exp.Duration)
		switch {
		case months > 36:
			entry += 25
		case months > 24:
			entry += 15
		case months > 12:
			entry += 10
		}

		desc := strings.ToLower(exp.Description)
		entry += math.Min(25, float64(match.CountHits(desc, positiveWords)*3))
		entry += math.Min(15, float64(match.CountHits(desc, in.Profile.PositiveKeywords)*3))
		entry -= float64(match.CountHits(desc, negativeWords) * 5)

		if metricPattern.MatchString(desc) {
			entry += 10
		}

		total += clamp(entry)
	}

	score = total / float64(len(in.Record.Experience))
	return score
}

func educationQuality(in *Input) (score float64) {
	if len(in.Record.Education) == 0 {
		return score
	}

	var total float64
	for _, edu := range in.Record.Education {
		entry := 40.0

		degree := strings.ToLower(edu.Degree)
		switch {
		case strings.Contains(degree, "phd"):
			entry += 30
		case strings.Contains(degree, "master"):
			entry += 20
		case strings.Contains(degree, "bachelor"):
			entry += 15
		case strings.Contains(degree, "associate"):
			entry += 10
		}

		institution := strings.ToLower(edu.Institution)
		switch {
		case strings.Contains(institution, "university"):
			entry += 10
		case strings.Contains(institution, "college"):
			entry += 5
		}

		if gpa, ok := findGPA(edu.Description); ok {
			switch {
			case gpa >= 3.5:
				entry += 10
			case gpa >= 3.0:
				entry += 5
			}
		}

		total += clamp(entry)
	}

	score = total / float64(len(in.Record.Education))
	return score
}

// skillsRelevance gives each skill up to 10 points and reports the share of the maximum.
func skillsRelevance(in *Input) (score float64) {
	skills := in.Record.Skills
	if len(skills) == 0 {
		return score
	}

	var total float64
	for _, skill := range skills {
		points := 5.0

		if len(strings.Fields(skill)) > 1 {
			points += 3
		}

		for _, req := range in.Requirements.RequiredSkills {
			if match.Contains(skill, req) {
				points += 2
				break
			}
		}

		if match.Any(skill, in.Profile.SkillKeywords) {
			points += 3
		}

		if match.Any(skill, softwareWords) {
			points += 2
		}

		total += math.Min(10, points)
	}

	score = total / float64(len(skills)*10) * 100
	return score
}

func achievementsQuality(in *Input) (score float64) {
	if len(in.Record.Accomplishments) == 0 {
		return score
	}

	var total float64
	for _, ach := range in.Record.Accomplishments {
		entry := 30.0

		if metricPattern.MatchString(ach) {
			entry += 30
		}

		entry += math.Min(40, float64(match.CountHits(ach, positiveWords)*10))
		total += clamp(entry)
	}

	score = total / float64(len(in.Record.Accomplishments))
	return score
}

// keywordMatching is neutral at 50 when no keywords are required.
func keywordMatching(in *Input) (score float64) {
	keywords := in.Requirements.Keywords
	if len(keywords) == 0 {
		score = 50
		return score
	}

	score = clamp(percent(match.CountHits(KeywordText(in.Record), keywords), len(keywords)) * 1.5)
	return score
}

// KeywordText is the text requirement keywords are matched against.
func KeywordText(record *resume.Record) (text string) {
	parts := []string{record.Summary}
	parts = append(parts, record.Skills...)
	parts = append(parts, record.Descriptions()...)
	text = match.Join(parts...)
	return text
}

func structureQuality(in *Input) (score float64) {
	score = 50

	sections := in.Record.Sections()
	expIdx := slices.Index(sections, resume.SectionExperience)
	eduIdx := slices.Index(sections, resume.SectionEducation)
	if expIdx >= 0 && eduIdx >= 0 && expIdx < eduIdx {
		score += 20
	}

	content := contentOf(in.Record)
	bullets := strings.Count(content, "•") + strings.Count(content, "- ")
	if bullets >= 3 {
		score += 15
	}

	words := len(strings.Fields(content))
	switch {
	case words >= 300 && words <= 800:
		score += 15
	case words > 1200:
		score -= 10
	}

	score = clamp(score)
	return score
}

// totalExperienceYears sums every entry's duration, rounded to one decimal.
func totalExperienceYears(in *Input) (years float64) {
	var months int
	for _, exp := range in.Record.Experience {
		months += in.Durations.Months(exp.Duration)
	}
	years = roundTenths(float64(months) / 12)
	return years
}

func roundTenths(value float64) (rounded float64) {
	rounded = math.Round(value*10) / 10
	return rounded
}
