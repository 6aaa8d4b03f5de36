package domain

import "time"

// ScoringConfig is an immutable weight triple controlling the relative
// influence of the preference, affinity and similarity terms. Triples are
// logically unique; only the active flag may be toggled after creation.
type ScoringConfig struct {
	ID        int64
	W1        float64 // preference match
	W2        float64 // behavioral affinity
	W3        float64 // title similarity
	Active    bool
	CreatedAt time.Time
}

// RecommendationLog records a single impression or click. ConfigID is nil
// for baseline (non-scored) impressions. Clicked flips false to true once
// and never back.
type RecommendationLog struct {
	ID        int64
	UserID    int64
	ArticleID int64
	ConfigID  *int64
	Clicked   bool
	CreatedAt time.Time
}

// ConfigStats holds observed click-through performance of one config
type ConfigStats struct {
	ConfigID    int64
	Impressions int64
	Clicks      int64
	CTR         float64
}
