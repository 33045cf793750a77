package report

import (
	"regexp"
	"strings"

	"github.com/nikogura/cv-evaluator/pkg/industry"
	"github.com/nikogura/cv-evaluator/pkg/match"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
	"github.com/nikogura/cv-evaluator/pkg/scorer"
)

// Highest education labels.
const (
	EducationPhD       = "PhD"
	EducationMaster    = "Master"
	EducationBachelor  = "Bachelor"
	EducationAssociate = "Associate"
	EducationOther     = "Other"
)

//nolint:gochecknoglobals // Compiled patterns
var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
)

// keywordShare is the fraction of requirement keywords a résumé must mention.
const keywordShare = 0.5

// CandidateInfoFor pulls contact details from the summary and totals the experience.
func CandidateInfoFor(record *resume.Record, breakdown scorer.Breakdown) (info CandidateInfo) {
	info = CandidateInfo{
		Name:             NotFound,
		Email:            NotFound,
		Phone:            NotFound,
		ExperienceYears:  breakdown[scorer.TotalExperienceYears],
		HighestEducation: HighestEducation(record.Education),
	}

	name, _, _ := strings.Cut(record.Summary, "\n")
	if name = strings.TrimSpace(name); name != "" {
		info.Name = name
	}

	if email := emailPattern.FindString(record.Summary); email != "" {
		info.Email = email
	}

	if phone := phonePattern.FindString(record.Summary); phone != "" {
		info.Phone = phone
	}

	return info
}

// HighestEducation ranks every degree and returns the best label, or "" without entries.
func HighestEducation(education []resume.EducationEntry) (label string) {
	if len(education) == 0 {
		return label
	}

	best := 0
	for _, edu := range education {
		if rank := degreeRank(edu.Degree); rank > best {
			best = rank
		}
	}

	label = []string{EducationOther, EducationAssociate, EducationBachelor, EducationMaster, EducationPhD}[best]
	return label
}

func degreeRank(degree string) (rank int) {
	degree = strings.ToLower(degree)
	switch {
	case strings.Contains(degree, "phd") || strings.Contains(degree, "doctor"):
		rank = 4
	case strings.Contains(degree, "master") || strings.Contains(degree, "mba"):
		rank = 3
	case strings.Contains(degree, "bachelor") || strings.Contains(degree, "bs") || strings.Contains(degree, "ba"):
		rank = 2
	case strings.Contains(degree, "associate") || strings.Contains(degree, "a.a.s"):
		rank = 1
	}
	return rank
}

// CheckRequirements evaluates each named requirement check. Checks whose
// requirement is unset pass.
func CheckRequirements(record *resume.Record, reqs *requirements.Requirements, ind industry.Industry, breakdown scorer.Breakdown) (checks Checks) {
	checks = Checks{
		MinExperience:    true,
		RequiredSkills:   true,
		EducationLevel:   true,
		Keywords:         true,
		IndustrySpecific: scorer.MeetsIndustryMinimums(ind, breakdown),
	}

	if reqs.MinExperienceYears > 0 {
		checks.MinExperience = breakdown[scorer.TotalExperienceYears] >= reqs.MinExperienceYears
	}

	if len(reqs.RequiredSkills) > 0 {
		checks.RequiredSkills = len(MatchSkills(record, reqs.RequiredSkills).Missing) == 0
	}

	if reqs.EducationLevel != "" {
		checks.EducationLevel = meetsEducation(record, reqs.EducationLevel)
	}

	if len(reqs.Keywords) > 0 {
		hits := match.CountHits(scorer.KeywordText(record), reqs.Keywords)
		checks.Keywords = float64(hits) >= float64(len(reqs.Keywords))*keywordShare
	}

	return checks
}

// meetsEducation is false for a required level outside the known ranking.
func meetsEducation(record *resume.Record, level string) (meets bool) {
	required, ok := requirements.EducationRank(level)
	if !ok {
		return meets
	}

	current, ok := requirements.EducationRank(HighestEducation(record.Education))
	if !ok {
		return meets
	}

	meets = current >= required
	return meets
}

// MatchSkills splits the required skills into those found in the joined skills list and those not.
func MatchSkills(record *resume.Record, required []string) (sm SkillsMatch) {
	sm = SkillsMatch{Matching: []string{}, Missing: []string{}}
	skills := match.Join(record.Skills...)
	for _, skill := range required {
		if match.Contains(skills, skill) {
			sm.Matching = append(sm.Matching, skill)
			continue
		}
		sm.Missing = append(sm.Missing, skill)
	}
	return sm
}

// Recommendation is the hiring guidance for a total score.
func Recommendation(score float64) (text string) {
	switch {
	case score >= 85:
		text = "This candidate is an excellent match for the position. Recommend proceeding to the next stage of the interview process."
	case score >= 70:
		text = "This candidate is a good match for the position. Consider for further evaluation."
	case score >= 50:
		text = "This candidate meets some of the requirements. May require additional screening or skills development."
	default:
		text = "This candidate is not a strong match for this specific position. Consider for other opportunities that better align with their skills."
	}
	return text
}
