package scorer

import (
	"maps"
	"slices"
)

// Decision labels, best first.
const (
	HighlyRecommended = "Highly Recommended"
	Recommended       = "Recommended"
	MaybeConsider     = "Maybe Consider"
	NotRecommended    = "Not Recommended"
)

// Breakdown maps factor names to scores. It also carries total_experience_years,
// which has no weight.
type Breakdown map[string]float64

// Thresholds are the minimum totals for each decision tier.
type Thresholds struct {
	High   float64 `json:"high"`
	Medium float64 `json:"medium"`
	Low    float64 `json:"low"`
}

// DefaultThresholds apply to industries without their own.
//
//nolint:gochecknoglobals // Scoring configuration constants
var DefaultThresholds = Thresholds{High: 80, Medium: 65, Low: 50}

// BaseWeights apply to every industry before its overrides. They are not
// required to sum to one.
//
//nolint:gochecknoglobals // Scoring configuration constants
var BaseWeights = map[string]float64{
	SectionCompleteness:      0.10,
	ExperienceQuality:        0.30,
	EducationQuality:         0.15,
	SkillsRelevance:          0.20,
	AchievementsQuality:      0.10,
	KeywordMatching:          0.05,
	StructureQuality:         0.05,
	"technical_skills_score": 0.05,
}

// ResolveWeights returns the base weights with overrides replacing or adding entries.
func ResolveWeights(overrides map[string]float64) (weights map[string]float64) {
	weights = maps.Clone(BaseWeights)
	maps.Copy(weights, overrides)
	return weights
}

// Combine sums score*weight over the breakdown, clamps to [0,100] and rounds
// to one decimal. Factors without a weight contribute nothing.
func Combine(breakdown Breakdown, weights map[string]float64) (total float64) {
	// Summed in key order so the total is reproducible.
	for _, name := range slices.Sorted(maps.Keys(breakdown)) {
		total += breakdown[name] * weights[name]
	}
	total = roundTenths(clamp(total))
	return total
}

// Decide maps a total score to a decision label.
func Decide(score float64, t Thresholds) (decision string) {
	switch {
	case score >= t.High:
		decision = HighlyRecommended
	case score >= t.Medium:
		decision = Recommended
	case score >= t.Low:
		decision = MaybeConsider
	default:
		decision = NotRecommended
	}
	return decision
}
