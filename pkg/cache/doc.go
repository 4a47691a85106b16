// Package cache implements the Redis-backed cache-aside layer that sits
// between the HTTP API and the upstream pricing vendor.
//
// The package has three parts:
//
//   - Key: deterministic cache-key construction from a resource prefix and
//     an unordered parameter map. Two maps holding the same entries always
//     produce the same key, regardless of insertion order.
//
//   - Store / GetOrSet: the get-or-populate pattern. On a hit the cached
//     value is returned and the compute function never runs. On a miss the
//     value is computed, returned to the caller, and written to the backend
//     in the background (fire-and-forget).
//
//   - Backend: a minimal get/set/delete interface over a key-value service.
//     The production implementation wraps a go-redis client; tests inject
//     in-memory or deliberately failing backends.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	store := cache.NewStore(cache.NewRedisBackend(redisClient), logger)
//
//	key := cache.Key("cards", map[string]string{"page": "1", "pageSize": "24"})
//
//	page, err := cache.GetOrSet(ctx, store, key, cache.TTLCards,
//		func(ctx context.Context) (CardsPage, error) {
//			return fetchFromVendor(ctx)
//		})
//
// # Resilience
//
// The store never fails a request because the cache backend is down. Read
// errors degrade silently to a miss, and write errors are logged and
// discarded. A total Redis outage therefore degrades the system to
// "always recompute", not to request failures.
//
// # Known race
//
// Two concurrent misses for the same key may both invoke their compute
// function and both write the result (last write wins). Recomputation is
// idempotent and cheap relative to the vendor rate-limit budget, so this is
// accepted; there is no single-flight coalescing.
//
// # Metrics
//
// The store exports Prometheus metrics:
//
//   - tcg_cache_hits_total - Cache hits
//   - tcg_cache_misses_total - Cache misses
//   - tcg_cache_errors_total{operation} - Cache operation errors
package cache
