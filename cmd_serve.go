package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpLayer "realty-agent/http"
	"realty-agent/repository"
	"realty-agent/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func openCache(ctx context.Context) (repository.CacheRepository, func()) {
	if cfg.Cache.RedisAddr == "" {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("redis unavailable, falling back to in-process cache",
			zap.String("addr", cfg.Cache.RedisAddr), zap.Error(err))
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}
	logger.Info("using redis cache", zap.String("addr", cfg.Cache.RedisAddr))
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}

func openAnalyticsStore() (repository.AnalyticsStore, error) {
	path := cfg.Analytics.DatabasePath
	if path == "" {
		return repository.NewAnalyticsStoreMemory(), nil
	}
	return repository.NewAnalyticsStoreSQLite(path)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openAnalyticsStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close analytics store", zap.Error(err))
		}
	}()

	cache, closeCache := openCache(ctx)
	defer closeCache()

	rng := service.NewLockedRand(service.NewSeededRand(seed(cfg.Analytics)))
	properties := repository.NewPropertyRepositoryMemory()

	analytics, err := service.NewAnalyticsService(ctx, store, cache, properties, rng, logger.Named("analytics"))
	if err != nil {
		return fmt.Errorf("failed to load analytics: %w", err)
	}
	dispatcher := service.NewDispatcher(analytics, cfg.Analytics.BufferSize, logger.Named("telemetry"))

	policy := mortgagePolicy(cfg.Mortgage)
	mortgage := service.NewMortgageService(policy, repository.NewEstimateRepositoryMemory(),
		dispatcher, logger.Named("mortgage"))
	catalog := service.NewCatalogService(properties, rng, dispatcher, logger.Named("catalog"))
	comparison := service.NewTermComparisonService(policy)
	prepayment := service.NewPrepaymentService(policy, logger.Named("prepayment"))

	var limiter *httpLayer.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.GetRateLimitRefill())
		defer limiter.Stop()
	}

	httpLogger := logger.Named("http")
	router := httpLayer.NewRouter(httpLayer.Handlers{
		Mortgage:  httpLayer.NewMortgageHandler(mortgage, comparison, prepayment, catalog, httpLogger),
		Property:  httpLayer.NewPropertyHandler(catalog, httpLogger),
		Analytics: httpLayer.NewAnalyticsHandler(analytics, dispatcher, httpLogger),
		Browse:    httpLayer.NewBrowseHandler(catalog, cache, dispatcher, cfg.GetSessionTTL(), httpLogger),
	}, limiter, httpLogger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
		IdleTimeout:  cfg.GetIdleTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", zap.Error(err))
		}
		if err := dispatcher.Close(shutdownCtx); err != nil {
			logger.Warn("telemetry did not drain", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}
