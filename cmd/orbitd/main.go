package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/orbit-connect/orbitcore/internal/config"
	"github.com/orbit-connect/orbitcore/internal/fixtures"
	logpkg "github.com/orbit-connect/orbitcore/internal/logger"
	"github.com/orbit-connect/orbitcore/internal/metrics"
	"github.com/orbit-connect/orbitcore/internal/repository/memory"
	chiTransport "github.com/orbit-connect/orbitcore/internal/transport/chi"
	cataloguc "github.com/orbit-connect/orbitcore/internal/usecase/catalog"
	communityuc "github.com/orbit-connect/orbitcore/internal/usecase/community"
	formsuc "github.com/orbit-connect/orbitcore/internal/usecase/forms"
	gamificationuc "github.com/orbit-connect/orbitcore/internal/usecase/gamification"
	healthuc "github.com/orbit-connect/orbitcore/internal/usecase/health"
	"github.com/orbit-connect/orbitcore/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting orbitd",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("fixtures", fixtureSource(cfg.Fixtures.Path)),
	)

	set, err := fixtures.Load(cfg.Fixtures.Path)
	if err != nil {
		logger.Fatal("Failed to load fixtures", zap.Error(err))
	}
	logger.Info("Fixtures loaded",
		zap.Int("resources", len(set.Resources)),
		zap.Int("stories", len(set.Stories)),
		zap.Int("leaderboard", len(set.Leaderboard)),
	)

	// Register domain metrics explicitly (no init())
	metrics.RegisterDomainMetrics()

	// Stores live for the process lifetime
	resources := memory.NewResources(set)
	stories := memory.NewStories(set)
	players := memory.NewPlayers(set)

	catalogSvc := cataloguc.New(resources, cfg.Search.FacetLimit)
	communitySvc := communityuc.New(stories)
	gamificationSvc := gamificationuc.New(players)
	formsSvc := formsuc.New()
	healthSvc := healthuc.New(map[string]healthuc.Counter{
		"resources":   catalogSvc,
		"stories":     communitySvc,
		"leaderboard": gamificationSvc,
	})

	server := chiTransport.NewServer(
		catalogSvc, communitySvc, gamificationSvc, formsSvc, healthSvc,
		chiTransport.SearchDefaults{
			MinRelevance: cfg.Search.DefaultMinRelevance,
			Limit:        cfg.Search.DefaultLimit,
			MaxLimit:     cfg.Search.MaxLimit,
			FacetLimit:   cfg.Search.FacetLimit,
		},
		logger,
	)
	r := chiTransport.NewRouter(server, logger, chiTransport.CORSOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxAgeSec:      cfg.CORS.MaxAgeSec,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func fixtureSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
