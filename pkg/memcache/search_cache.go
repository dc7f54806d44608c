// pkg/memcache/search_cache.go
package mem

import (
	"sync"
	"time"
)

// SearchCache is a fixed-TTL response cache for upstream search calls.
// Unlike FlowStore, reads do not extend the deadline: a cached search
// result goes stale after its TTL no matter how often it is hit.
type SearchCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]cacheEntry
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

func NewSearchCache(ttl time.Duration) *SearchCache {
	return &SearchCache{
		ttl:  ttl,
		data: make(map[string]cacheEntry),
	}
}

func (s *SearchCache) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, false
	}
	return e.body, true
}

func (s *SearchCache) Set(key string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = cacheEntry{body: body, expiresAt: time.Now().Add(s.ttl)}
}
