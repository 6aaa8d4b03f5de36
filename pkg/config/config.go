package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/newsrec/pkg/feed"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsrec.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		UpdateInterval int `yaml:"update_interval" json:"update_interval" jsonschema:"default=30,description=Feed update interval in minutes"`
		MaxWorkers     int `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent feed fetches"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetcher struct {
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsrec/1.0,description=User agent for feed requests"`
	} `yaml:"fetcher" json:"fetcher" jsonschema:"description=Feed fetcher configuration"`

	Feeds []FeedSource `yaml:"feeds" json:"feeds" jsonschema:"description=Feed sources to ingest"`

	Recommender RecommenderConfig `yaml:"recommender" json:"recommender" jsonschema:"description=Recommendation engine configuration"`
}

// FeedSource describes one configured feed with its default tagging
type FeedSource struct {
	URL        string   `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Country    string   `yaml:"country" json:"country" jsonschema:"description=Default country for items of this feed"`
	Categories []string `yaml:"categories" json:"categories" jsonschema:"description=Default categories for items of this feed"`
}

// RecommenderConfig holds recommendation engine settings
type RecommenderConfig struct {
	FetchLimit   int `yaml:"fetch_limit" json:"fetch_limit" jsonschema:"default=1000,description=Maximum candidate articles read per ranking call"`
	DefaultLimit int `yaml:"default_limit" json:"default_limit" jsonschema:"default=10,description=Recommendations returned when no limit is requested"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsrec.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.UpdateInterval == 0 {
		cfg.Schedule.UpdateInterval = 30
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for fetcher
	if cfg.Fetcher.Timeout == 0 {
		cfg.Fetcher.Timeout = 30 * time.Second
	}
	if cfg.Fetcher.UserAgent == "" {
		cfg.Fetcher.UserAgent = "Newsrec/1.0"
	}

	// set defaults for recommender
	if cfg.Recommender.FetchLimit == 0 {
		cfg.Recommender.FetchLimit = 1000
	}
	if cfg.Recommender.DefaultLimit == 0 {
		cfg.Recommender.DefaultLimit = 10
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetcher.Timeout < time.Second {
		return fmt.Errorf("fetcher timeout must be at least 1 second")
	}
	if cfg.Recommender.FetchLimit < 1 {
		return fmt.Errorf("recommender.fetch_limit must be at least 1")
	}
	if cfg.Recommender.DefaultLimit < 1 {
		return fmt.Errorf("recommender.default_limit must be at least 1")
	}
	for i, src := range cfg.Feeds {
		if src.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRecommenderConfig returns recommendation engine configuration
func (c *Config) GetRecommenderConfig() RecommenderConfig {
	return c.Recommender
}

// FeedSources converts configured feeds to fetcher sources
func (c *Config) FeedSources() []feed.Source {
	sources := make([]feed.Source, len(c.Feeds))
	for i, src := range c.Feeds {
		sources[i] = feed.Source{URL: src.URL, Country: src.Country, Categories: src.Categories}
	}
	return sources
}
