package evaluation

import (
	"github.com/jonathan/hirelens/internal/scoring"
	"github.com/jonathan/hirelens/internal/types"
)

// Summary holds aggregate statistics over a batch of evaluation results.
type Summary struct {
	TotalCandidates int     `json:"total_candidates"`
	AverageScore    float64 `json:"average_score"`
	MaxScore        float64 `json:"max_score"`
	MinScore        float64 `json:"min_score"`

	VerdictCounts      map[types.Verdict]int     `json:"verdict_counts"`
	VerdictPercentages map[types.Verdict]float64 `json:"verdict_percentages"`
}

// Summarize computes batch statistics. An empty batch yields a zero Summary.
func Summarize(results []types.EvaluationResult) Summary {
	summary := Summary{
		VerdictCounts:      make(map[types.Verdict]int),
		VerdictPercentages: make(map[types.Verdict]float64),
	}
	if len(results) == 0 {
		return summary
	}

	summary.TotalCandidates = len(results)
	summary.MaxScore = results[0].FinalScore
	summary.MinScore = results[0].FinalScore

	sum := 0.0
	for _, r := range results {
		sum += r.FinalScore
		if r.FinalScore > summary.MaxScore {
			summary.MaxScore = r.FinalScore
		}
		if r.FinalScore < summary.MinScore {
			summary.MinScore = r.FinalScore
		}
		summary.VerdictCounts[r.Verdict]++
	}
	summary.AverageScore = scoring.Round2(sum / float64(len(results)))

	for verdict, count := range summary.VerdictCounts {
		summary.VerdictPercentages[verdict] = scoring.Round2(float64(count) / float64(len(results)) * 100)
	}

	return summary
}
