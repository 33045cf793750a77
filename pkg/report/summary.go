package report

import (
	"math"
	"slices"
)

// topN is how many common strengths and weaknesses a summary lists.
const topN = 3

// Summarize aggregates individual reports. Error reports count toward the
// totals with a score of zero.
func Summarize(reports []IndividualReport) (summary SummaryReport) {
	summary = SummaryReport{
		TotalCVsEvaluated:    len(reports),
		IndustryDistribution: map[string]int{},
		DecisionDistribution: map[string]int{},
	}

	var total float64
	var strengths, weaknesses []string
	for _, r := range reports {
		es := r.Report.EvaluationSummary
		total += es.TotalScore
		if r.MeetsRequirements.All() {
			summary.MeetsRequirementsCount++
		}
		summary.IndustryDistribution[string(r.Industry)]++
		summary.DecisionDistribution[es.Decision]++
		strengths = append(strengths, es.Strengths...)
		weaknesses = append(weaknesses, es.Weaknesses...)
	}

	if len(reports) > 0 {
		summary.AverageScore = roundTenths(total / float64(len(reports)))
		summary.MeetsRequirementsPercentage = roundTenths(float64(summary.MeetsRequirementsCount) / float64(len(reports)) * 100)
	}

	summary.CommonStrengths = mostCommon(strengths, topN)
	summary.CommonWeaknesses = mostCommon(weaknesses, topN)
	return summary
}

// mostCommon counts messages and returns the n most frequent. Equal counts
// keep the order in which the messages first appeared.
func mostCommon(messages []string, n int) (counts []Count) {
	counts = []Count{}
	index := map[string]int{}
	for _, m := range messages {
		i, seen := index[m]
		if !seen {
			index[m] = len(counts)
			counts = append(counts, Count{Text: m, Count: 1})
			continue
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b Count) int {
		return b.Count - a.Count
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func roundTenths(value float64) (rounded float64) {
	rounded = math.Round(value*10) / 10
	return rounded
}
