package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// writeTimeout bounds the background cache write after the handler has
// already returned its response.
const writeTimeout = 5 * time.Second

// Store implements the cache-aside pattern over a Backend.
type Store struct {
	backend Backend
	logger  zerolog.Logger
}

// NewStore creates a store on the given backend.
func NewStore(backend Backend, logger zerolog.Logger) *Store {
	if backend == nil {
		panic("cache backend cannot be nil")
	}
	return &Store{backend: backend, logger: logger}
}

// Backend returns the underlying backend. Used by maintenance tooling.
func (s *Store) Backend() Backend {
	return s.backend
}

// GetOrSet returns the cached value for key, or computes, returns and
// caches a fresh one.
//
// On a hit the compute function never runs. A backend read error is not
// surfaced: it degrades to a miss. A compute error propagates to the caller
// unchanged and nothing is cached. On a successful compute the write is
// fire-and-forget: the value is returned before the write completes, and a
// failed write is only logged.
//
// A non-positive ttl falls back to DefaultTTL.
func GetOrSet[T any](ctx context.Context, s *Store, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	if cached, ok := s.get(ctx, key); ok {
		var value T
		if err := json.Unmarshal(cached, &value); err == nil {
			CacheHits.Inc()
			s.logger.Debug().Str("key", key).Msg("Cache hit")
			return value, nil
		}
		// Corrupt entry, e.g. written by an older schema. Treat as a miss;
		// the fresh write below replaces it.
		s.logger.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}
	CacheMisses.Inc()
	s.logger.Debug().Str("key", key).Msg("Cache miss")

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	s.setAsync(ctx, key, ttl, value)
	return value, nil
}

// get reads a raw entry, degrading any backend error to a miss.
func (s *Store) get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if err != ErrCacheMiss {
			CacheErrors.WithLabelValues("get").Inc()
			s.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed, treating as miss")
		}
		return nil, false
	}
	return data, true
}

// setAsync launches the fire-and-forget backend write. The write carries a
// detached context so it survives the request ending.
func (s *Store) setAsync(ctx context.Context, key string, ttl time.Duration, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("Marshal cache entry failed")
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	go func() {
		defer cancel()
		if err := s.backend.Set(writeCtx, key, data, ttl); err != nil {
			CacheErrors.WithLabelValues("set").Inc()
			s.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
			return
		}
		s.logger.Debug().Str("key", key).Dur("ttl", ttl).Msg("Cached entry")
	}()
}
