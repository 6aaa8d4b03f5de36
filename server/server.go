package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsrec/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	recommender Recommender
	store       Store
	version     string
	debug       bool

	defaultLimit int

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Recommender produces the ranked article list for a user
type Recommender interface {
	Recommend(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error)
}

// Store covers the storage operations the HTTP surface needs
type Store interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	AddInteraction(ctx context.Context, interaction *domain.Interaction) error
	RegisterLike(ctx context.Context, userID int64, title, country string, categories []string) error
	MarkClicked(ctx context.Context, userID, articleID int64, configID *int64) error
	ConfigStats(ctx context.Context) ([]domain.ConfigStats, error)
	FetchLogs(ctx context.Context, scored bool) ([]domain.RecommendationLog, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds server dependencies
type Params struct {
	Config      ConfigProvider
	Recommender Recommender
	Store       Store
	Version     string
	Debug       bool

	// DefaultLimit applies when a recommendations request has no limit, default 10
	DefaultLimit int
}

// New initializes a new server instance
func New(params Params) *Server {
	if params.DefaultLimit == 0 {
		params.DefaultLimit = 10
	}
	s := &Server{
		config:       params.Config,
		recommender:  params.Recommender,
		store:        params.Store,
		version:      params.Version,
		debug:        params.Debug,
		defaultLimit: params.DefaultLimit,
		router:       routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsrec", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /recommendations/{user_id}", s.recommendationsHandler)
		r.HandleFunc("POST /clicks", s.clickHandler)
		r.HandleFunc("POST /interactions", s.interactionHandler)
		r.HandleFunc("GET /configs/stats", s.configStatsHandler)
		r.HandleFunc("GET /metrics/comparison", s.comparisonHandler)
	})
}
