package testutil

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/poketerminal/tcg-market-gateway/pkg/cache"
)

// MemBackend is an in-memory cache.Backend for tests. TTLs are recorded
// but never enforced; glob patterns in Keys follow path.Match semantics,
// which covers the prefix* patterns used in production.
type MemBackend struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
}

// NewMemBackend creates an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (b *MemBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	value, ok := b.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return value, nil
}

func (b *MemBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
	b.ttls[key] = ttl
	return nil
}

func (b *MemBackend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
	delete(b.ttls, key)
	return nil
}

func (b *MemBackend) Keys(ctx context.Context, pattern string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var keys []string
	for key := range b.entries {
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Len returns the number of stored entries.
func (b *MemBackend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// TTL returns the TTL recorded for a key, zero when absent.
func (b *MemBackend) TTL(key string) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ttls[key]
}

var _ cache.Backend = (*MemBackend)(nil)
