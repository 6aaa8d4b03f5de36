package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/feed"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// ArticleStore persists fetched articles
type ArticleStore interface {
	Create(ctx context.Context, article *domain.Article) (created bool, err error)
}

// Fetcher retrieves articles from one feed source
type Fetcher interface {
	Fetch(ctx context.Context, src feed.Source) ([]domain.Article, error)
}

// Scheduler periodically refreshes the configured feed sources. A failing
// source is logged and skipped; it never aborts the whole refresh round.
type Scheduler struct {
	store   ArticleStore
	fetcher Fetcher
	sources []feed.Source

	updateInterval time.Duration
	maxWorkers     int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds scheduler dependencies and settings
type Params struct {
	Store   ArticleStore
	Fetcher Fetcher
	Sources []feed.Source

	UpdateInterval time.Duration
	MaxWorkers     int
}

// NewScheduler creates a scheduler instance with defaults applied
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval == 0 {
		params.UpdateInterval = 30 * time.Minute
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}
	return &Scheduler{
		store:          params.Store,
		fetcher:        params.Fetcher,
		sources:        params.Sources,
		updateInterval: params.UpdateInterval,
		maxWorkers:     params.MaxWorkers,
	}
}

// Start begins periodic refresh, the first round runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.Refresh(ctx)

		ticker := time.NewTicker(s.updateInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Refresh(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] scheduler started, %d sources, update interval %v", len(s.sources), s.updateInterval)
}

// Stop terminates the scheduler and waits for the running round to finish
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Refresh fetches all sources once with a bounded worker pool
func (s *Scheduler) Refresh(ctx context.Context) {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.maxWorkers)

	for _, src := range s.sources {
		group.Go(func() error {
			s.refreshSource(groupCtx, src)
			return nil // source failures are logged, not propagated
		})
	}
	_ = group.Wait()
}

// refreshSource fetches one source and stores new articles
func (s *Scheduler) refreshSource(ctx context.Context, src feed.Source) {
	articles, err := s.fetcher.Fetch(ctx, src)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch %s: %v", src.URL, err)
		return
	}

	added := 0
	for i := range articles {
		created, err := s.store.Create(ctx, &articles[i])
		if err != nil {
			lgr.Printf("[WARN] failed to store article %q from %s: %v", articles[i].Title, src.URL, err)
			continue
		}
		if created {
			added++
		}
	}
	lgr.Printf("[INFO] refreshed %s, %d items, %d new", src.URL, len(articles), added)
}
