package domain

import "time"

// UserProfile holds a user's explicit preferences and accumulated affinity counts.
// Preferred lists are user-declared and rarely change; liked maps are bumped
// on every "liked" interaction and never decremented.
type UserProfile struct {
	ID                  int64
	Username            string
	PreferredCategories []string
	PreferredCountries  []string
	LikedCategories     map[string]int
	LikedCountries      map[string]int
}

// InteractionType is an open string enum, stored as-is
type InteractionType string

// known interaction types, callers may record others
const (
	InteractionLiked  InteractionType = "liked"
	InteractionOpened InteractionType = "opened"
)

// Interaction is an append-only record of a user acting on an article
type Interaction struct {
	ID        int64
	UserID    int64
	ArticleID int64
	Type      InteractionType
	TimeSpent int // seconds, 0 when not measured
	Timestamp time.Time
}
