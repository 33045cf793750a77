// Package feedback turns factor scores into human-readable feedback.
//
// Rules are evaluated in a fixed order so the same scores always yield the
// same messages in the same order.
package feedback

import "strings"

// Fallback is the only feedback line when no rule fires.
const Fallback = "CV looks good overall"

// Result is the generated feedback for one résumé.
type Result struct {
	// Feedback is the full ordered list of messages.
	Feedback []string `json:"feedback"`
	// Strengths holds highlight labels and strength messages.
	Strengths []string `json:"strengths"`
	// Weaknesses holds missing-section and improvement messages.
	Weaknesses []string `json:"weaknesses"`
}

// Input is everything Generate reads.
type Input struct {
	Scores          map[string]float64
	MissingSections []string
	IndustryRules   []Rule
	Highlights      []Rule
}

// Generate applies the base rules, then the industry rules, then the
// highlight rules, and falls back to a single generic line.
func Generate(in Input) (result Result) {
	result = Result{
		Feedback:   []string{},
		Strengths:  []string{},
		Weaknesses: []string{},
	}

	if len(in.MissingSections) > 0 {
		msg := "Missing sections: " + strings.Join(in.MissingSections, ", ")
		result.Feedback = append(result.Feedback, msg)
		result.Weaknesses = append(result.Weaknesses, msg)
	}

	rules := make([]Rule, 0, len(BaseRules)+len(in.IndustryRules))
	rules = append(rules, BaseRules...)
	rules = append(rules, in.IndustryRules...)

	for _, rule := range rules {
		if !rule.Fires(in.Scores) {
			continue
		}
		result.Feedback = append(result.Feedback, rule.Message)
		switch rule.Category {
		case Weakness:
			result.Weaknesses = append(result.Weaknesses, rule.Message)
		case Strength:
			result.Strengths = append(result.Strengths, rule.Message)
		}
	}

	highlights := make([]Rule, 0, len(BaseHighlights)+len(in.Highlights))
	highlights = append(highlights, BaseHighlights...)
	highlights = append(highlights, in.Highlights...)

	var labels []string
	for _, rule := range highlights {
		if rule.Fires(in.Scores) {
			labels = append(labels, rule.Message)
		}
	}

	if len(labels) > 0 {
		result.Feedback = append(result.Feedback, "Strengths: "+strings.Join(labels, ", "))
		result.Strengths = append(labels, result.Strengths...)
	}

	if len(result.Feedback) == 0 {
		result.Feedback = append(result.Feedback, Fallback)
	}

	return result
}
