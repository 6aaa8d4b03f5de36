package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsrec/pkg/config"
	"github.com/umputun/newsrec/pkg/feed"
	"github.com/umputun/newsrec/pkg/recommender"
	"github.com/umputun/newsrec/pkg/repository"
	"github.com/umputun/newsrec/pkg/scheduler"
	"github.com/umputun/newsrec/pkg/similarity"
	"github.com/umputun/newsrec/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting newsrec version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config %s: %w", opts.Config, err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	// recommendation pipeline
	scorer := recommender.NewScorer(similarity.NewOracle())
	selector := recommender.NewSelector(repos.Config, repos.Log)
	ranker := recommender.NewRanker(recommender.Params{
		Articles:     repos.Article,
		Users:        repos.User,
		Interactions: repos.Interaction,
		Selector:     selector,
		Logs:         repos.Log,
		Scorer:       scorer,
		FetchLimit:   cfg.Recommender.FetchLimit,
	})

	// feed ingestion
	fetcher := feed.NewFetcher(cfg.Fetcher.Timeout, cfg.Fetcher.UserAgent)
	sched := scheduler.NewScheduler(scheduler.Params{
		Store:          repos.Article,
		Fetcher:        fetcher,
		Sources:        cfg.FeedSources(),
		UpdateInterval: time.Duration(cfg.Schedule.UpdateInterval) * time.Minute,
		MaxWorkers:     cfg.Schedule.MaxWorkers,
	})
	if len(cfg.Feeds) > 0 {
		sched.Start(ctx)
		defer sched.Stop()
	} else {
		log.Print("[WARN] no feeds configured, ingestion disabled")
	}

	srv := server.New(server.Params{
		Config:       cfg,
		Recommender:  ranker,
		Store:        server.NewStoreAdapter(repos),
		Version:      revision,
		Debug:        opts.Debug,
		DefaultLimit: cfg.Recommender.DefaultLimit,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
