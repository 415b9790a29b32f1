package aggregator

import (
	"context"
	"log"

	"podborka/pkg/domain"
)

const (
	afishaLimit         = 10
	afishaTitleLimit    = 120
	afishaSummaryLimit  = 240
	afishaMinTitleLen   = 8
	afishaPerChannel    = 3
	afishaChannelsTotal = 12
)

// afisha combines the events API, the listing-site scrape and telegram
// channels, all filtered by the events rules.
func (r *Registry) afisha(ctx context.Context) []domain.Item {
	keep := r.eventsRules.Match
	var items []domain.Item

	if r.events != nil {
		res, err := r.events.Events(ctx, keep)
		if err != nil {
			log.Printf("[WARN] events api failed: %v", err)
		}
		items = append(items, res...)
	}

	if r.cfg.EventsSite != "" {
		res, err := r.links.Fetch(ctx, r.cfg.EventsSite, afishaMinTitleLen, keep)
		if err != nil {
			log.Printf("[WARN] events site %s failed: %v", r.cfg.EventsSite, err)
		}
		items = append(items, res...)
	}

	for _, it := range r.telegram.Fetch(ctx, r.cfg.EventsChannels, afishaPerChannel, afishaChannelsTotal) {
		if it.Title == "" || !keep(it.Title) {
			continue
		}
		items = append(items, domain.Item{
			Title:   domain.Truncate(it.Title, afishaTitleLimit),
			Summary: domain.Truncate(it.Summary, afishaSummaryLimit),
			URL:     it.URL,
			Image:   it.Image,
		})
	}

	DailyShuffle(items, "afisha", r.now())
	return limit(items, afishaLimit)
}
