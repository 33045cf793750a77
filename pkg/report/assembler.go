// Package report turns scored résumés into candidate reports and summarizes a batch.
package report

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nikogura/cv-evaluator/pkg/duration"
	"github.com/nikogura/cv-evaluator/pkg/industry"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
	"github.com/nikogura/cv-evaluator/pkg/scorer"
)

// Assembler evaluates batches of résumés against a set of requirements.
type Assembler struct {
	Scorer       *scorer.Scorer
	Requirements requirements.Requirements
	// Now times batches. It is the clock the duration parser resolves "present" against.
	Now    func() time.Time
	Logger *zap.Logger
}

// NewAssembler creates an assembler. A nil parser uses the wall clock; a nil logger discards output.
func NewAssembler(reqs requirements.Requirements, durations *duration.Parser, logger *zap.Logger) (a *Assembler) {
	if durations == nil {
		durations = duration.NewParser()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a = &Assembler{
		Scorer:       scorer.NewScorer(durations, logger),
		Requirements: reqs,
		Now:          durations.Now,
		Logger:       logger,
	}
	return a
}

// SetRequirements merges overrides into the assembler's requirements.
func (a *Assembler) SetRequirements(overrides map[string]any) (err error) {
	var merged requirements.Requirements
	merged, err = a.Requirements.Merge(overrides)
	if err != nil {
		err = errors.Wrap(err, "failed to set requirements")
		return err
	}
	a.Requirements = merged
	return err
}

// EvaluateMultiple evaluates items in order against the assembler's requirements.
func (a *Assembler) EvaluateMultiple(items []resume.Item) (result Result) {
	result = a.EvaluateMultipleWith(items, a.Requirements)
	return result
}

// EvaluateMultipleWith evaluates items in order against reqs. A failing item
// becomes an error report and the rest of the batch continues.
func (a *Assembler) EvaluateMultipleWith(items []resume.Item, reqs requirements.Requirements) (result Result) {
	start := a.now()

	reports := make([]IndividualReport, 0, len(items))
	for _, item := range items {
		reports = append(reports, a.evaluateItem(item, &reqs))
	}

	result = Result{
		IndividualReports: reports,
		SummaryReport:     Summarize(reports),
	}

	a.logger().Debug("evaluated batch",
		zap.Int("count", len(items)),
		zap.Duration("elapsed", a.now().Sub(start)),
	)
	return result
}

func (a *Assembler) evaluateItem(item resume.Item, reqs *requirements.Requirements) (ir IndividualReport) {
	if item.Err != nil {
		a.logger().Warn("failed to decode resume", zap.String("cv_id", item.ID), zap.Error(item.Err))
		ir = ErrorReport(item.ID, item.Err)
		return ir
	}

	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("panic during evaluation: %v", r)
			a.logger().Warn("failed to evaluate resume", zap.String("cv_id", item.ID), zap.Error(err))
			ir = ErrorReport(item.ID, err)
		}
	}()

	record := item.Record
	eval := a.Scorer.Evaluate(&record, reqs)
	checks := CheckRequirements(&record, reqs, eval.Industry, eval.Breakdown)

	ir = IndividualReport{
		CVID:     item.ID,
		Industry: eval.Industry,
		Report: Report{
			CandidateInfo: CandidateInfoFor(&record, eval.Breakdown),
			EvaluationSummary: EvaluationSummary{
				TotalScore:     eval.TotalScore,
				Decision:       eval.Decision,
				Recommendation: Recommendation(eval.TotalScore),
				Strengths:      eval.Feedback.Strengths,
				Weaknesses:     eval.Feedback.Weaknesses,
				Industry:       eval.Industry,
			},
			ScoreBreakdown:       eval.Breakdown,
			FullFeedback:         eval.Feedback.Feedback,
			SkillsMatch:          MatchSkills(&record, reqs.RequiredSkills),
			MeetsAllRequirements: checks.All(),
			ExtractedData:        &record,
		},
		MeetsRequirements: checks,
	}
	return ir
}

// ErrorReport is the placeholder entry for a résumé that could not be evaluated.
func ErrorReport(id string, cause error) (ir IndividualReport) {
	reason := fmt.Sprintf("Error evaluating CV: %s", cause)
	ir = IndividualReport{
		CVID:     id,
		Industry: industry.Unknown,
		Report: Report{
			CandidateInfo: CandidateInfo{Name: NotFound, Email: NotFound, Phone: NotFound},
			EvaluationSummary: EvaluationSummary{
				Decision:       DecisionError,
				Recommendation: Recommendation(0),
				Strengths:      []string{},
				Weaknesses:     []string{reason},
				Industry:       industry.Unknown,
			},
			ScoreBreakdown: scorer.Breakdown{},
			FullFeedback:   []string{reason},
			SkillsMatch:    SkillsMatch{Matching: []string{}, Missing: []string{}},
		},
		Error: cause.Error(),
	}
	return ir
}

func (a *Assembler) now() (t time.Time) {
	if a.Now == nil {
		t = time.Now()
		return t
	}
	t = a.Now()
	return t
}

func (a *Assembler) logger() (logger *zap.Logger) {
	logger = a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}
