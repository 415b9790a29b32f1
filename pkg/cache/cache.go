package cache

import (
	"sync"
	"time"

	"podborka/pkg/domain"
)

// Store is a topic-keyed in-memory cache with per-entry TTL. Expiry is
// evaluated lazily at read time; nothing is evicted in the background. Writes
// are full-entry replacements, last writer wins.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	items   []domain.Item
	written time.Time
	ttl     time.Duration
}

// NewStore creates an empty cache store.
func NewStore() *Store {
	return &Store{entries: map[string]entry{}, now: time.Now}
}

// Get returns the cached items for the topic, or false when the topic was
// never written or its TTL window has elapsed.
func (s *Store) Get(topic string) ([]domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[topic]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.written) > e.ttl {
		return nil, false
	}
	return e.items, true
}

// Set overwrites the topic entry and resets its freshness clock. Empty
// results are cached too, so a broken source is not hammered within one TTL
// window.
func (s *Store) Set(topic string, items []domain.Item, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[topic] = entry{items: items, written: s.now(), ttl: ttl}
}
