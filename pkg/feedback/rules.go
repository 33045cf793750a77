package feedback

// Category says which side of its threshold a rule fires on.
type Category string

const (
	// Weakness rules fire when the factor score is below the threshold.
	Weakness Category = "weakness"
	// Strength rules fire when the factor score is at or above the threshold.
	Strength Category = "strength"
)

// Rule maps one factor score to a message.
type Rule struct {
	Factor    string
	Category  Category
	Threshold float64
	Message   string
}

// Fires reports whether the rule applies to scores. A factor missing from scores reads as 0.
func (r Rule) Fires(scores map[string]float64) (fires bool) {
	score := scores[r.Factor]
	switch r.Category {
	case Weakness:
		fires = score < r.Threshold
	case Strength:
		fires = score >= r.Threshold
	}
	return fires
}

// Below builds a weakness rule.
func Below(factor string, threshold float64, message string) (rule Rule) {
	rule = Rule{Factor: factor, Category: Weakness, Threshold: threshold, Message: message}
	return rule
}

// AtLeast builds a strength rule.
func AtLeast(factor string, threshold float64, message string) (rule Rule) {
	rule = Rule{Factor: factor, Category: Strength, Threshold: threshold, Message: message}
	return rule
}

// BaseRules apply to every industry, in order.
//
//nolint:gochecknoglobals // Feedback configuration constants
var BaseRules = []Rule{
	Below("experience_quality", 70, "Experience section could be improved with more quantifiable achievements"),
	AtLeast("experience_quality", 85, "Strong experience section with good quantifiable achievements"),
	Below("education_quality", 60, "Education section could be strengthened with more details"),
	AtLeast("education_quality", 80, "Impressive educational background"),
	Below("skills_relevance", 60, "Skills section could be more specific and relevant to the target industry"),
	AtLeast("skills_relevance", 80, "Excellent skills section with relevant industry skills"),
	Below("achievements_quality", 50, "Add measurable achievements with numbers to strengthen this section"),
	AtLeast("achievements_quality", 75, "Strong achievements section with measurable results"),
	Below("structure_quality", 60, "Improve structure with bullet points and clear sections"),
	AtLeast("structure_quality", 80, "Well-structured CV with good organization"),
}

// BaseHighlights are the short strength labels shared by every industry.
//
//nolint:gochecknoglobals // Feedback configuration constants
var BaseHighlights = []Rule{
	AtLeast("experience_quality", 80, "strong work experience"),
	AtLeast("education_quality", 80, "solid educational background"),
}
