package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/poketerminal/tcg-market-gateway/internal/config"
	"github.com/poketerminal/tcg-market-gateway/pkg/cache"
	"github.com/poketerminal/tcg-market-gateway/pkg/logging"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached entries by key pattern",
	Long: `Delete cached entries matching a key pattern. The default pattern
removes every gateway entry, which forces a full refresh on the next
requests. Run it after adapter changes that alter the cached shapes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClear(cmd.Context())
	},
}

type clearFlags struct {
	pattern string
	dryRun  bool
}

var clearOpts clearFlags

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringVar(&clearOpts.pattern, "pattern", "ppt:*", "Key pattern to delete")
	clearCmd.Flags().BoolVar(&clearOpts.dryRun, "dry-run", false, "List matching keys without deleting")
}

func runClear(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: true,
		Output: os.Stderr,
	}).With().Str("component", "seed-cache").Logger()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}

	backend := cache.NewRedisBackend(redisClient)

	keys, err := backend.Keys(ctx, clearOpts.pattern)
	if err != nil {
		return fmt.Errorf("enumerate keys: %w", err)
	}
	if len(keys) == 0 {
		logger.Info().Str("pattern", clearOpts.pattern).Msg("no cache keys to clear")
		return nil
	}

	// Group by prefix so the log shows what is about to go.
	groups := make(map[string]int)
	for _, key := range keys {
		prefix := key
		if i := strings.Index(key, ":"); i >= 0 {
			prefix = key[:i]
		}
		groups[prefix]++
	}
	for prefix, count := range groups {
		logger.Info().Str("prefix", prefix).Int("keys", count).Msg("matched")
	}

	if clearOpts.dryRun {
		logger.Info().Int("keys", len(keys)).Msg("dry run, nothing deleted")
		return nil
	}

	for _, key := range keys {
		if err := backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}

	logger.Info().Int("keys", len(keys)).Msg("cache cleared")
	return nil
}
