package recommender

import "github.com/umputun/newsrec/pkg/domain"

// offline evaluation over recommendation log rows, used by the stats API and
// scripts comparing scored output against the random baseline

// Comparison contrasts scored recommendations with the baseline
type Comparison struct {
	ScoredCTR         float64 `json:"scored_ctr"`
	BaselineCTR       float64 `json:"baseline_ctr"`
	ScoredPrecision   float64 `json:"scored_precision"`
	BaselinePrecision float64 `json:"baseline_precision"`
}

// precisionDepth is the N of precision@N in comparisons
const precisionDepth = 5

// CTR returns clicks over impressions for the given rows, 0 when empty
func CTR(logs []domain.RecommendationLog) float64 {
	if len(logs) == 0 {
		return 0.0
	}
	clicks := 0
	for _, row := range logs {
		if row.Clicked {
			clicks++
		}
	}
	return float64(clicks) / float64(len(logs))
}

// PrecisionAtN averages per-user precision over each user's first n logged
// rows, relying on rows arriving in impression order. Returns 0 when no rows.
func PrecisionAtN(logs []domain.RecommendationLog, n int) float64 {
	if len(logs) == 0 || n <= 0 {
		return 0.0
	}

	perUser := make(map[int64][]bool)
	order := make([]int64, 0)
	for _, row := range logs {
		if _, seen := perUser[row.UserID]; !seen {
			order = append(order, row.UserID)
		}
		perUser[row.UserID] = append(perUser[row.UserID], row.Clicked)
	}

	total := 0.0
	for _, userID := range order {
		clicks := perUser[userID]
		if len(clicks) > n {
			clicks = clicks[:n]
		}
		hits := 0
		for _, clicked := range clicks {
			if clicked {
				hits++
			}
		}
		total += float64(hits) / float64(len(clicks))
	}
	return total / float64(len(order))
}

// Compare evaluates scored rows against baseline rows with CTR and precision@5
func Compare(scored, baseline []domain.RecommendationLog) Comparison {
	return Comparison{
		ScoredCTR:         CTR(scored),
		BaselineCTR:       CTR(baseline),
		ScoredPrecision:   PrecisionAtN(scored, precisionDepth),
		BaselinePrecision: PrecisionAtN(baseline, precisionDepth),
	}
}
