// Command market-api serves the card market data gateway: an HTTP API in
// front of the vendor pricing service with a Redis cache-aside layer.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/poketerminal/tcg-market-gateway/internal/config"
	"github.com/poketerminal/tcg-market-gateway/pkg/api"
	"github.com/poketerminal/tcg-market-gateway/pkg/cache"
	"github.com/poketerminal/tcg-market-gateway/pkg/logging"
	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.Setup(logging.DefaultConfig())
		fallback.Fatal().Err(err).Msg("load configuration")
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	store := cache.NewStore(cache.NewRedisBackend(redisClient), logger)

	client := ppt.New(ppt.Config{
		BaseURL: cfg.Vendor.BaseURL,
		APIKey:  cfg.Vendor.APIKey,
		Timeout: cfg.Vendor.Timeout,
	}, logger)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.New(store, client, logger).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}

	if err := redisClient.Close(); err != nil {
		logger.Warn().Err(err).Msg("close Redis client")
	}
}
