package report

import (
	"github.com/nikogura/cv-evaluator/pkg/industry"
	"github.com/nikogura/cv-evaluator/pkg/resume"
	"github.com/nikogura/cv-evaluator/pkg/scorer"
)

// DecisionError labels reports for résumés that could not be evaluated.
const DecisionError = "Error"

// NotFound stands in for candidate details missing from the summary.
const NotFound = "Not found"

// Result is the outcome of evaluating a batch.
type Result struct {
	IndividualReports []IndividualReport `json:"individual_reports"`
	SummaryReport     SummaryReport      `json:"summary_report"`
}

// IndividualReport is one résumé's entry in a batch result.
type IndividualReport struct {
	CVID              string            `json:"cv_id"`
	Industry          industry.Industry `json:"industry"`
	Report            Report            `json:"report"`
	MeetsRequirements Checks            `json:"meets_requirements"`
	Error             string            `json:"error,omitempty"`
}

// Report is the detailed evaluation of one résumé.
type Report struct {
	CandidateInfo        CandidateInfo     `json:"candidate_info"`
	EvaluationSummary    EvaluationSummary `json:"evaluation_summary"`
	ScoreBreakdown       scorer.Breakdown  `json:"score_breakdown"`
	FullFeedback         []string          `json:"full_feedback"`
	SkillsMatch          SkillsMatch       `json:"skills_match"`
	MeetsAllRequirements bool              `json:"meets_all_requirements"`
	ExtractedData        *resume.Record    `json:"extracted_data,omitempty"`
}

// CandidateInfo is contact and background detail pulled from the résumé.
type CandidateInfo struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	ExperienceYears  float64 `json:"experience_years"`
	HighestEducation string  `json:"highest_education"`
}

// EvaluationSummary is the headline of a report.
type EvaluationSummary struct {
	TotalScore     float64           `json:"total_score"`
	Decision       string            `json:"decision"`
	Recommendation string            `json:"recommendation"`
	Strengths      []string          `json:"strengths"`
	Weaknesses     []string          `json:"weaknesses"`
	Industry       industry.Industry `json:"industry"`
}

// SkillsMatch partitions the required skills by whether the résumé lists them.
type SkillsMatch struct {
	Matching []string `json:"matching"`
	Missing  []string `json:"missing"`
}

// Checks are the named requirement checks. Each is evaluated independently.
type Checks struct {
	MinExperience    bool `json:"min_experience"`
	RequiredSkills   bool `json:"required_skills"`
	EducationLevel   bool `json:"education_level"`
	Keywords         bool `json:"keywords"`
	IndustrySpecific bool `json:"industry_specific"`
}

// All reports whether every check passed.
func (c Checks) All() (ok bool) {
	ok = c.MinExperience && c.RequiredSkills && c.EducationLevel && c.Keywords && c.IndustrySpecific
	return ok
}

// SummaryReport aggregates a batch.
type SummaryReport struct {
	TotalCVsEvaluated           int            `json:"total_cvs_evaluated"`
	AverageScore                float64        `json:"average_score"`
	MeetsRequirementsCount      int            `json:"meets_requirements_count"`
	MeetsRequirementsPercentage float64        `json:"meets_requirements_percentage"`
	IndustryDistribution        map[string]int `json:"industry_distribution"`
	DecisionDistribution        map[string]int `json:"decision_distribution"`
	CommonStrengths             []Count        `json:"common_strengths"`
	CommonWeaknesses            []Count        `json:"common_weaknesses"`
}

// Count is how many reports in a batch carry a feedback message.
type Count struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}
