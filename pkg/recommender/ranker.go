package recommender

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsrec/pkg/domain"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/interaction_store.go -pkg mocks -skip-ensure -fmt goimports . InteractionStore
//go:generate moq -out mocks/similarity_oracle.go -pkg mocks -skip-ensure -fmt goimports . SimilarityOracle
//go:generate moq -out mocks/config_selector.go -pkg mocks -skip-ensure -fmt goimports . ConfigSelector

// ArticleStore provides the candidate article set
type ArticleStore interface {
	FetchAll(ctx context.Context, limit int) ([]domain.Article, error)
}

// UserStore provides profiles and liked titles
type UserStore interface {
	GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)
	GetLikedTitles(ctx context.Context, userID int64) ([]string, error)
}

// InteractionStore provides behavioral signals
type InteractionStore interface {
	TimeSpent(ctx context.Context, userID int64) (map[int64]int, error)
}

// ConfigSelector resolves the scoring configuration for a ranking call
type ConfigSelector interface {
	Select(ctx context.Context) (*domain.ScoringConfig, error)
}

// Ranker turns the stored state into a ranked article list for one user.
// Every call re-reads profile, articles and behavior fresh; there is no
// in-process caching, the output reflects a live snapshot at call time.
type Ranker struct {
	articles     ArticleStore
	users        UserStore
	interactions InteractionStore
	selector     ConfigSelector
	logs         LogStore
	scorer       *Scorer

	fetchLimit int
}

// Params holds all Ranker dependencies and settings
type Params struct {
	Articles     ArticleStore
	Users        UserStore
	Interactions InteractionStore
	Selector     ConfigSelector
	Logs         LogStore
	Scorer       *Scorer

	// FetchLimit caps the candidate set read from storage, default 1000
	FetchLimit int
}

// NewRanker creates a ranker with the provided dependencies
func NewRanker(params Params) *Ranker {
	if params.FetchLimit == 0 {
		params.FetchLimit = 1000
	}
	return &Ranker{
		articles:     params.Articles,
		users:        params.Users,
		interactions: params.Interactions,
		selector:     params.Selector,
		logs:         params.Logs,
		scorer:       params.Scorer,
		fetchLimit:   params.FetchLimit,
	}
}

// Recommend returns up to limit articles ranked by score, best first. Ties
// keep the storage fetch order. A user without a profile gets an empty list,
// not an error. Every non-empty result logs one impression per article under
// the resolved config, feeding the adaptive weight selection.
func (r *Ranker) Recommend(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error) {
	profile, err := r.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		lgr.Printf("[DEBUG] no profile for user %d, nothing to recommend", userID)
		return []domain.Recommendation{}, nil
	}

	articles, err := r.articles.FetchAll(ctx, r.fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	timeSpent, err := r.interactions.TimeSpent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch time spent: %w", err)
	}

	likedTitles, err := r.users.GetLikedTitles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch liked titles: %w", err)
	}

	config, err := r.selector.Select(ctx)
	if err != nil {
		return nil, fmt.Errorf("select config: %w", err)
	}
	weights := Weights{Preference: config.W1, Affinity: config.W2, Similarity: config.W3}

	scored := make([]domain.Recommendation, 0, len(articles))
	for _, article := range articles {
		scored = append(scored, r.scorer.Score(article, *profile, timeSpent[article.ID], likedTitles, weights))
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	if len(scored) > 0 {
		configID := config.ID
		if err := r.logs.AddImpressions(ctx, userID, scored, &configID); err != nil {
			return nil, fmt.Errorf("log impressions: %w", err)
		}
	}

	lgr.Printf("[DEBUG] recommended %d articles for user %d with config %d", len(scored), userID, config.ID)
	return scored, nil
}
