package recommender

import (
	"strings"

	"github.com/umputun/newsrec/pkg/domain"
)

// Weights controls the relative influence of the three scoring terms,
// preference match (w1), behavioral affinity (w2) and title similarity (w3)
type Weights struct {
	Preference float64
	Affinity   float64
	Similarity float64
}

// DefaultWeights is the neutral triple used when no configuration exists yet
var DefaultWeights = Weights{Preference: 1.0, Affinity: 1.0, Similarity: 1.0}

const (
	// preferenceBonus is added per matched explicit preference (country, categories)
	preferenceBonus = 5.0

	// time-spent tiers, seconds read to bonus points
	longReadSeconds  = 900
	shortReadSeconds = 600
	longReadBonus    = 5.0
	shortReadBonus   = 2.0

	// similarityThreshold filters near-zero similarity noise out of the score
	similarityThreshold = 0.3
	// similarityScale maps the [0,1] similarity onto the score range
	similarityScale = 10.0
)

// SimilarityOracle scores a candidate title against previously liked titles
type SimilarityOracle interface {
	MaxSimilarity(title string, likedTitles []string) float64
}

// Scorer computes the additive recommendation score for a single article
type Scorer struct {
	oracle SimilarityOracle
}

// NewScorer creates a scorer backed by the given title similarity oracle
func NewScorer(oracle SimilarityOracle) *Scorer {
	return &Scorer{oracle: oracle}
}

// Score computes the weighted score of one article for one user. timeSpent is
// the user's recorded seconds on this article, 0 when never opened. The score
// has no upper bound; a zero weight fully suppresses its term.
func (s *Scorer) Score(article domain.Article, profile domain.UserProfile, timeSpent int, likedTitles []string, w Weights) domain.Recommendation {
	country := NormalizeCountry(article.Country)
	categories := normalizeTags(article.Categories)

	score := 0.0

	// preference term: both checks are independent, a full match adds w1*10
	if country != "" && containsFold(profile.PreferredCountries, country) {
		score += w.Preference * preferenceBonus
	}
	for _, cat := range categories {
		if containsFold(profile.PreferredCategories, cat) {
			score += w.Preference * preferenceBonus
			break
		}
	}

	// behavioral term: accumulated affinity counts plus time-spent tiers
	score += w.Affinity * float64(profile.LikedCountries[country])
	for _, cat := range categories {
		score += w.Affinity * float64(profile.LikedCategories[cat])
	}
	switch {
	case timeSpent > longReadSeconds:
		score += w.Affinity * longReadBonus
	case timeSpent > shortReadSeconds:
		score += w.Affinity * shortReadBonus
	}

	// similarity term: skipped entirely below the noise threshold
	if len(likedTitles) > 0 {
		if sim := s.oracle.MaxSimilarity(article.Title, likedTitles); sim > similarityThreshold {
			score += w.Similarity * sim * similarityScale
		}
	}

	return domain.Recommendation{
		ArticleID:  article.ID,
		Title:      article.Title,
		Score:      score,
		Country:    country,
		Categories: categories,
	}
}

// NormalizeCountry collapses the stored country value to a single lowercased
// string. Upstream storage sometimes degrades an array-typed country to its
// serialized form, e.g. `{"US","GB"}`; in that case the first element wins.
func NormalizeCountry(country string) string {
	if strings.HasPrefix(country, "{") && strings.HasSuffix(country, "}") && len(country) >= 2 {
		inner := strings.TrimSuffix(strings.TrimPrefix(country, "{"), "}")
		inner = strings.ReplaceAll(inner, `"`, "")
		first, _, _ := strings.Cut(inner, ",")
		return strings.ToLower(strings.TrimSpace(first))
	}
	return strings.ToLower(strings.TrimSpace(country))
}

// normalizeTags lowercases category tags, dropping empties
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.ToLower(strings.TrimSpace(tag)); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// containsFold reports whether the list contains the value, case-insensitive.
// The value is expected to be lowercased already.
func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.ToLower(item) == value {
			return true
		}
	}
	return false
}
