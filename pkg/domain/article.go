package domain

import "time"

// Article represents a news article produced by ingestion.
// Immutable from the scoring engine's viewpoint.
type Article struct {
	ID          int64
	Title       string
	Link        string
	Description string
	Source      string
	Country     string
	Categories  []string
	Language    string
	Published   time.Time
	CreatedAt   time.Time
}

// Recommendation is a scored article as returned by the ranker
type Recommendation struct {
	ArticleID  int64    `json:"article_id"`
	Title      string   `json:"title"`
	Score      float64  `json:"score"`
	Country    string   `json:"country,omitempty"`
	Categories []string `json:"categories,omitempty"`
}
