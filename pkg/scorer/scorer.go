// Package scorer computes factor scores for a résumé, combines them into a
// weighted total and maps the total to a decision.
package scorer

import (
	"go.uber.org/zap"

	"github.com/nikogura/cv-evaluator/pkg/duration"
	"github.com/nikogura/cv-evaluator/pkg/feedback"
	"github.com/nikogura/cv-evaluator/pkg/industry"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
)

// Evaluation is the scored result for one résumé.
type Evaluation struct {
	Industry   industry.Industry
	TotalScore float64
	Decision   string
	Breakdown  Breakdown
	Feedback   feedback.Result
}

// Scorer evaluates résumés. It holds no per-résumé state and is safe for concurrent use.
type Scorer struct {
	Durations *duration.Parser
	Logger    *zap.Logger
}

// NewScorer creates a new scorer instance. A nil parser uses the wall clock; a nil logger discards output.
func NewScorer(durations *duration.Parser, logger *zap.Logger) (scorer *Scorer) {
	if durations == nil {
		durations = duration.NewParser()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	scorer = &Scorer{
		Durations: durations,
		Logger:    logger,
	}
	return scorer
}

// Evaluate classifies the résumé and scores it for that industry.
func (s *Scorer) Evaluate(record *resume.Record, reqs *requirements.Requirements) (eval Evaluation) {
	ind := industry.Classify(record)
	eval = s.EvaluateAs(record, reqs, ind)
	return eval
}

// EvaluateAs scores the résumé for a given industry.
func (s *Scorer) EvaluateAs(record *resume.Record, reqs *requirements.Requirements, ind industry.Industry) (eval Evaluation) {
	profile := ProfileFor(ind)
	in := NewInput(record, reqs, profile, s.Durations)

	breakdown := make(Breakdown, len(BaseFactors)+len(profile.Factors)+1)
	for _, f := range BaseFactors {
		breakdown[f.Name] = f.Score(in)
	}
	breakdown[TotalExperienceYears] = totalExperienceYears(in)
	for _, f := range profile.Factors {
		breakdown[f.Name] = f.Score(in)
	}

	weights := ResolveWeights(profile.Weights)
	total := Combine(breakdown, weights)
	decision := Decide(total, profile.Thresholds)

	var missing []string
	if breakdown[SectionCompleteness] < 100 {
		missing = MissingSections(record, reqs.RequiredSections)
	}

	result := feedback.Generate(feedback.Input{
		Scores:          breakdown,
		MissingSections: missing,
		IndustryRules:   profile.Feedback,
		Highlights:      profile.Highlights,
	})

	s.logger().Debug("scored resume",
		zap.String("industry", string(ind)),
		zap.Float64("total_score", total),
		zap.String("decision", decision),
		zap.Any("weights", weights),
	)

	eval = Evaluation{
		Industry:   ind,
		TotalScore: total,
		Decision:   decision,
		Breakdown:  breakdown,
		Feedback:   result,
	}
	return eval
}

// MeetsIndustryMinimums applies the industry_specific requirement check.
func MeetsIndustryMinimums(ind industry.Industry, breakdown Breakdown) (meets bool) {
	meets = ProfileFor(ind).MeetsMinimums(breakdown)
	return meets
}

func (s *Scorer) logger() (logger *zap.Logger) {
	logger = s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}
