package dispatcher

import (
	"context"
	"log"
	"strings"
	"time"

	"podborka/pkg/cache"
	"podborka/pkg/domain"
)

// Aggregator runs a topic pipeline. Unknown topics yield an empty result.
type Aggregator interface {
	Aggregate(ctx context.Context, topic string) ([]domain.Item, error)
}

// Dispatcher resolves a topic name to its aggregator, consults the cache and
// serves the result. It never surfaces a fault to the caller: any aggregation
// error collapses to an empty result, which is still cached so a persistently
// broken source is not retried within one TTL window.
type Dispatcher struct {
	agg   Aggregator
	cache *cache.Store
	ttl   func(topic string) time.Duration
}

// New creates a dispatcher. ttl maps a topic to its cache window.
func New(agg Aggregator, store *cache.Store, ttl func(topic string) time.Duration) *Dispatcher {
	return &Dispatcher{agg: agg, cache: store, ttl: ttl}
}

// Items returns the ordered items for the topic. With force the cache is
// bypassed and then refreshed. The result is never nil.
func (d *Dispatcher) Items(ctx context.Context, topic string, force bool) []domain.Item {
	topic = strings.ToLower(strings.TrimSpace(topic))

	if !force {
		if items, ok := d.cache.Get(topic); ok {
			return items
		}
	}

	items, err := d.agg.Aggregate(ctx, topic)
	if err != nil {
		log.Printf("[WARN] aggregation for topic %q failed: %v", topic, err)
		items = nil
	}
	if items == nil {
		items = []domain.Item{}
	}

	d.cache.Set(topic, items, d.ttl(topic))
	return items
}
