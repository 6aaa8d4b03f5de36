package recommender

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsrec/pkg/domain"
)

//go:generate moq -out mocks/config_store.go -pkg mocks -skip-ensure -fmt goimports . ConfigStore
//go:generate moq -out mocks/log_store.go -pkg mocks -skip-ensure -fmt goimports . LogStore

// ConfigStore manages scoring configuration rows
type ConfigStore interface {
	Ensure(ctx context.Context, w1, w2, w3 float64) (int64, error)
	Get(ctx context.Context, id int64) (*domain.ScoringConfig, error)
	GetActive(ctx context.Context) (*domain.ScoringConfig, error)
}

// LogStore records impressions and clicks and reports per-config performance
type LogStore interface {
	AddImpressions(ctx context.Context, userID int64, recs []domain.Recommendation, configID *int64) error
	ConfigStats(ctx context.Context) ([]domain.ConfigStats, error)
}

// Selector picks the scoring configuration to rank with. The policy is greedy
// exploit-only: the config with the best observed CTR wins, there is no
// explore phase. Configs without impressions are skipped, never divided by.
type Selector struct {
	configs ConfigStore
	logs    LogStore
}

// NewSelector creates a weight selector over the given stores
func NewSelector(configs ConfigStore, logs LogStore) *Selector {
	return &Selector{configs: configs, logs: logs}
}

// Select resolves the configuration for the next ranking call. Fallback
// chain: best observed CTR, then most recently created active config, then
// DefaultWeights (created on first use).
func (s *Selector) Select(ctx context.Context) (*domain.ScoringConfig, error) {
	stats, err := s.logs.ConfigStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get config stats: %w", err)
	}

	var best *domain.ConfigStats
	for i := range stats {
		if stats[i].Impressions == 0 {
			continue
		}
		if best == nil || stats[i].CTR > best.CTR {
			best = &stats[i]
		}
	}

	if best != nil {
		config, err := s.configs.Get(ctx, best.ConfigID)
		if err != nil {
			return nil, fmt.Errorf("get best config: %w", err)
		}
		lgr.Printf("[DEBUG] selected config %d with ctr %.3f over %d impressions",
			best.ConfigID, best.CTR, best.Impressions)
		return config, nil
	}

	// no logged impressions yet, use the most recent active config
	active, err := s.configs.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active config: %w", err)
	}
	if active != nil {
		return active, nil
	}

	// empty config table, bootstrap with the neutral default
	id, err := s.configs.Ensure(ctx, DefaultWeights.Preference, DefaultWeights.Affinity, DefaultWeights.Similarity)
	if err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}
	config, err := s.configs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get default config: %w", err)
	}
	lgr.Printf("[INFO] bootstrapped default scoring config %d", id)
	return config, nil
}
