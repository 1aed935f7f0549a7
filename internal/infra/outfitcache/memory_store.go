package outfitcache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

type cacheEntry struct {
	outfits   []outfit.Outfit
	expiresAt time.Time
}

// MemoryStore is an in-memory suggestion cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]cacheEntry)}
}

// Get implements outfit.Store.
func (s *MemoryStore) Get(_ context.Context, key string) ([]outfit.Outfit, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return entry.outfits, true, nil
}

// Save caches the suggestions with optional TTL.
func (s *MemoryStore) Save(_ context.Context, key string, outfits []outfit.Outfit, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[key] = cacheEntry{outfits: outfits, expiresAt: exp}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ outfit.Store = (*MemoryStore)(nil)
