package server

import (
	"context"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/repository"
)

// StoreAdapter adapts the repository layer to the server's Store interface
type StoreAdapter struct {
	repos *repository.Repositories
}

// NewStoreAdapter creates an adapter over the repositories
func NewStoreAdapter(repos *repository.Repositories) *StoreAdapter {
	return &StoreAdapter{repos: repos}
}

// GetArticle retrieves an article by ID
func (a *StoreAdapter) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return a.repos.Article.Get(ctx, id)
}

// AddInteraction appends an interaction row
func (a *StoreAdapter) AddInteraction(ctx context.Context, interaction *domain.Interaction) error {
	return a.repos.Interaction.Add(ctx, interaction)
}

// RegisterLike records the implicit signals of a liked interaction
func (a *StoreAdapter) RegisterLike(ctx context.Context, userID int64, title, country string, categories []string) error {
	return a.repos.User.RegisterLike(ctx, userID, title, country, categories)
}

// MarkClicked records a click against a logged impression
func (a *StoreAdapter) MarkClicked(ctx context.Context, userID, articleID int64, configID *int64) error {
	return a.repos.Log.MarkClicked(ctx, userID, articleID, configID)
}

// ConfigStats reports per-config click-through performance
func (a *StoreAdapter) ConfigStats(ctx context.Context) ([]domain.ConfigStats, error) {
	return a.repos.Log.ConfigStats(ctx)
}

// FetchLogs returns scored or baseline log rows for offline evaluation
func (a *StoreAdapter) FetchLogs(ctx context.Context, scored bool) ([]domain.RecommendationLog, error) {
	return a.repos.Log.Fetch(ctx, scored)
}
