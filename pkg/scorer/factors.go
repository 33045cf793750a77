package scorer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nikogura/cv-evaluator/pkg/duration"
	"github.com/nikogura/cv-evaluator/pkg/match"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
)

// Factor is one named 0-100 sub-score.
type Factor struct {
	Name  string
	Score func(in *Input) (score float64)
}

// Input is the read-only view of one résumé that factors score.
type Input struct {
	Record       *resume.Record
	Requirements *requirements.Requirements
	Profile      *Profile
	Durations    *duration.Parser

	narrative string
	full      string
}

// scope selects the text a keyword factor searches.
type scope int

const (
	// narrative is the summary and the experience descriptions.
	narrative scope = iota
	// withSkills adds the skills list to the narrative.
	withSkills
)

// NewInput prepares a résumé for scoring.
func NewInput(record *resume.Record, reqs *requirements.Requirements, profile *Profile, durations *duration.Parser) (in *Input) {
	if durations == nil {
		durations = duration.NewParser()
	}

	parts := append([]string{record.Summary}, record.Descriptions()...)
	in = &Input{
		Record:       record,
		Requirements: reqs,
		Profile:      profile,
		Durations:    durations,
		narrative:    match.Join(parts...),
		full:         match.Join(append(parts, record.Skills...)...),
	}
	return in
}

func (in *Input) text(s scope) (text string) {
	if s == withSkills {
		text = in.full
		return text
	}
	text = in.narrative
	return text
}

// perHit scores min(100, hits * points).
func perHit(phrases []string, points float64, s scope) (score func(in *Input) float64) {
	score = func(in *Input) float64 {
		hits := match.CountHits(in.text(s), phrases)
		return clamp(float64(hits) * points)
	}
	return score
}

// coverage scores the share of phrases found, as a percentage.
func coverage(phrases []string, s scope) (score func(in *Input) float64) {
	score = func(in *Input) float64 {
		hits := match.CountHits(in.text(s), phrases)
		return clamp(percent(hits, len(phrases)))
	}
	return score
}

// skillCoverage counts skills naming any of the phrases, as a share of the phrase list.
func skillCoverage(phrases []string) (score func(in *Input) float64) {
	score = func(in *Input) float64 {
		count := match.CountItems(in.Record.Skills, phrases)
		return clamp(percent(count, len(phrases)))
	}
	return score
}

// entriesWith scores experience entries whose description has any of the phrases.
func entriesWith(phrases []string, points float64) (score func(in *Input) float64) {
	score = func(in *Input) float64 {
		count := match.CountItems(in.Record.Descriptions(), phrases)
		return clamp(float64(count) * points)
	}
	return score
}

// accomplishmentsWith scores accomplishments that contain any of the phrases.
func accomplishmentsWith(phrases []string, points float64) (score func(in *Input) float64) {
	score = func(in *Input) float64 {
		count := match.CountItems(in.Record.Accomplishments, phrases)
		return clamp(float64(count) * points)
	}
	return score
}

// yearsAs scores years spent in roles whose title names one of titles.
// Entries without a duration are skipped.
func yearsAs(titles []string, pointsPerYear float64) (score func(in *Input) float64) {
	score = func(in *Input) float64 {
		var years float64
		for _, exp := range in.Record.Experience {
			if exp.Duration == "" || !match.Any(exp.Title, titles) {
				continue
			}
			years += float64(in.Durations.Months(exp.Duration)) / 12
		}
		return clamp(years * pointsPerYear)
	}
	return score
}

// patternHits scores min(100, matching patterns * points) over the narrative.
func patternHits(patterns []*regexp.Regexp, points float64) (score func(in *Input) float64) {
	score = func(in *Input) float64 {
		var hits int
		for _, p := range patterns {
			if p.MatchString(in.narrative) {
				hits++
			}
		}
		return clamp(float64(hits) * points)
	}
	return score
}

// academicAchievement rewards GPA, scholarships and honors found in education descriptions.
func academicAchievement(in *Input) (score float64) {
	for _, edu := range in.Record.Education {
		if gpa, ok := findGPA(edu.Description); ok {
			switch {
			case gpa >= 3.5:
				score += 50
			case gpa >= 3.0:
				score += 30
			}
		}
		if match.Contains(edu.Description, "scholarship") {
			score += 20
		}
		if match.Contains(edu.Description, "honor") {
			score += 10
		}
	}
	score = clamp(score)
	return score
}

func findGPA(text string) (gpa float64, ok bool) {
	m := gpaPattern.FindStringSubmatch(text)
	if m == nil {
		return gpa, ok
	}
	var err error
	gpa, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return gpa, ok
	}
	ok = true
	return gpa, ok
}

func percent(part, whole int) (pct float64) {
	if whole == 0 {
		return pct
	}
	pct = float64(part) / float64(whole) * 100
	return pct
}

func clamp(score float64) (c float64) {
	c = math.Max(0, math.Min(100, score))
	return c
}

func contentOf(record *resume.Record) (content string) {
	parts := append([]string{record.Summary}, record.Descriptions()...)
	content = strings.Join(parts, " ")
	return content
}
