package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/poketerminal/tcg-market-gateway/internal/config"
	"github.com/poketerminal/tcg-market-gateway/pkg/cache"
	"github.com/poketerminal/tcg-market-gateway/pkg/catalog"
	"github.com/poketerminal/tcg-market-gateway/pkg/logging"
	"github.com/poketerminal/tcg-market-gateway/pkg/ppt"
)

// setsFetchLimit covers the full vendor set catalog in one page.
const setsFetchLimit = 250

// setsPageSizes are the listing variants the UI requests on cold start.
var setsPageSizes = []int{5, 10, 50, 100}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Warm the cache with common queries",
	Long: `Warm the cache with the set catalog, common listing queries and
card pages for the most recent sets. Calls are serialized behind a rate
limiter and use the retry/backoff fetch profile, so a full run takes a
while by design.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

type seedFlags struct {
	recentSets int
	interval   time.Duration
}

var seedOpts seedFlags

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedOpts.recentSets, "recent-sets", 5, "Number of most recent sets to seed card pages for")
	seedCmd.Flags().DurationVar(&seedOpts.interval, "interval", 2*time.Second, "Minimum delay between vendor calls")
}

// seeder holds the wiring for one warm run. Writes go straight to the
// backend (synchronous, unlike the serving path's fire-and-forget) so the
// tool only reports success once the entries are durable.
type seeder struct {
	client  *ppt.Client
	backend cache.Backend
	limiter *rate.Limiter
	retry   ppt.RetryConfig
	logger  zerolog.Logger
}

func runSeed(ctx context.Context) error {
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

	s := &seeder{
		client: ppt.New(ppt.Config{
			BaseURL: cfg.Vendor.BaseURL,
			APIKey:  cfg.Vendor.APIKey,
			Timeout: cfg.Vendor.Timeout,
		}, logger),
		backend: cache.NewRedisBackend(redisClient),
		limiter: rate.NewLimiter(rate.Every(seedOpts.interval), 1),
		retry:   ppt.DefaultRetryConfig(),
		logger:  logger,
	}

	logger.Info().Msg("starting cache seed, this may take a while")

	sets, err := s.seedSets(ctx)
	if err != nil {
		return fmt.Errorf("seed sets: %w", err)
	}

	if err := s.seedPopularCards(ctx); err != nil {
		return fmt.Errorf("seed popular cards: %w", err)
	}

	recent := recentSets(sets, seedOpts.recentSets)
	totalCards := 0
	for _, set := range recent {
		count, err := s.seedSetCards(ctx, set)
		if err != nil {
			return fmt.Errorf("seed cards for %s: %w", set.Name, err)
		}
		totalCards += count
	}

	logger.Info().
		Int("sets", len(sets)).
		Int("recent_set_cards", totalCards).
		Msg("cache seeding complete")
	return nil
}

// seedSets fetches the full catalog once and writes the listing variants
// the UI asks for, sliced locally the same way the serving path does.
func (s *seeder) seedSets(ctx context.Context) ([]catalog.Set, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(setsFetchLimit))

	var resp ppt.SetsResponse
	if err := s.client.GetJSONWithRetry(ctx, "/sets", params, s.retry, &resp); err != nil {
		return nil, err
	}

	all := catalog.TransformSets(resp.Data)
	for _, pageSize := range setsPageSizes {
		page := sliceSetsPage(all, 1, pageSize)
		key := cache.Key("ppt:sets", map[string]string{
			"page":     "1",
			"pageSize": strconv.Itoa(pageSize),
		})
		if err := s.write(ctx, key, page, cache.TTLSets); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int("sets", len(all.Data)).Msg("cached set listing variants")
	return all.Data, nil
}

// seedPopularCards warms the card queries the dashboard and explorer
// issue by default.
func (s *seeder) seedPopularCards(ctx context.Context) error {
	queries := []ppt.CardQuery{
		// Default card explorer view.
		{Limit: 24, Offset: 0},
		// Dashboard high-value cards.
		{MinPrice: "50", SortBy: "price", SortOrder: "desc", Limit: 20},
		// Chase cards by rarity.
		{Rarity: "Special Illustration Rare", Limit: 20},
	}

	for _, q := range queries {
		if _, err := s.seedCardQuery(ctx, q); err != nil {
			return err
		}
	}

	s.logger.Info().Int("queries", len(queries)).Msg("cached popular card queries")
	return nil
}

// seedSetCards warms the full card page for one set.
func (s *seeder) seedSetCards(ctx context.Context, set catalog.Set) (int, error) {
	count, err := s.seedCardQuery(ctx, ppt.CardQuery{Set: set.ID, Limit: 250})
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("set", set.Name).Int("cards", count).Msg("cached set cards")
	return count, nil
}

func (s *seeder) seedCardQuery(ctx context.Context, q ppt.CardQuery) (int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	var resp ppt.CardsResponse
	if err := s.client.GetJSONWithRetry(ctx, "/cards", q.Values(), s.retry, &resp); err != nil {
		return 0, err
	}

	page := catalog.TransformCards(resp.Data, resp.Metadata)
	key := cache.Key("ppt:cards", q.CacheParams())
	if err := s.write(ctx, key, page, cache.TTLCards); err != nil {
		return 0, err
	}
	return len(page.Data), nil
}

func (s *seeder) write(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	s.logger.Debug().Str("key", key).Dur("ttl", ttl).Msg("cached")
	return nil
}

// recentSets returns the n most recently released sets.
func recentSets(sets []catalog.Set, n int) []catalog.Set {
	sorted := make([]catalog.Set, len(sets))
	copy(sorted, sets)
	// Release dates are YYYY/MM/DD, so string order is date order.
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ReleaseDate > sorted[j].ReleaseDate
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// sliceSetsPage applies local pagination to the materialized filtered
// list, mirroring the serving path.
func sliceSetsPage(all catalog.SetsPage, pageNum, pageSize int) catalog.SetsPage {
	start := (pageNum - 1) * pageSize
	end := start + pageSize
	if start > len(all.Data) {
		start = len(all.Data)
	}
	if end > len(all.Data) {
		end = len(all.Data)
	}

	sliced := all.Data[start:end]
	return catalog.SetsPage{
		Data:       sliced,
		Page:       pageNum,
		PageSize:   pageSize,
		Count:      len(sliced),
		TotalCount: all.TotalCount,
	}
}
