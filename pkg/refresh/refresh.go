package refresh

import (
	"context"
	"log"
	"sync"
	"time"

	"podborka/pkg/domain"
)

// Provider serves topic items, optionally bypassing the cache.
type Provider interface {
	Items(ctx context.Context, topic string, force bool) []domain.Item
}

// Refresher periodically re-aggregates all topics so the cache stays warm
// between requests. Entirely optional: the dispatcher is lazy on its own.
type Refresher struct {
	provider Provider
	interval time.Duration
	topics   []domain.Topic
	wg       sync.WaitGroup
}

// New creates a refresher; interval 0 or below disables it.
func New(provider Provider, interval time.Duration, topics []domain.Topic) *Refresher {
	if len(topics) == 0 {
		topics = domain.Topics()
	}
	return &Refresher{provider: provider, interval: interval, topics: topics}
}

// Start launches the refresh loop. No-op when disabled.
func (r *Refresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		log.Printf("[INFO] background refresh disabled")
		return
	}

	r.wg.Add(1)
	go r.loop(ctx)
	log.Printf("[INFO] background refresh started, interval %v, %d topics", r.interval, len(r.topics))
}

// Wait blocks until the refresh loop exits.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

func (r *Refresher) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] background refresh stopped")
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *Refresher) refreshAll(ctx context.Context) {
	for _, topic := range r.topics {
		if ctx.Err() != nil {
			return
		}
		items := r.provider.Items(ctx, string(topic), true)
		log.Printf("[DEBUG] refreshed topic %s, %d items", topic, len(items))
	}
}
