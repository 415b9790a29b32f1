package aggregator

import (
	"context"
	"log"

	"podborka/pkg/domain"
)

const (
	agroLimit         = 10
	agroTitleLimit    = 120
	agroSummaryLimit  = 220
	agroMinTitleLen   = 12
	agroPerChannel    = 3
	agroChannelsTotal = 15
)

// agro combines trade-press listing sites with telegram channels, keeping
// only the business agenda.
func (r *Registry) agro(ctx context.Context) []domain.Item {
	keep := r.agroRules.Match
	var items []domain.Item

	for _, site := range r.cfg.AgroSites {
		res, err := r.links.Fetch(ctx, site, agroMinTitleLen, keep)
		if err != nil {
			log.Printf("[WARN] agro site %s failed: %v", site, err)
			continue
		}
		items = append(items, res...)
	}

	for _, it := range r.telegram.Fetch(ctx, r.cfg.AgroChannels, agroPerChannel, agroChannelsTotal) {
		if it.Title == "" || !keep(it.Title) {
			continue
		}
		items = append(items, domain.Item{
			Title:   domain.Truncate(it.Title, agroTitleLimit),
			Summary: domain.Truncate(it.Summary, agroSummaryLimit),
			URL:     it.URL,
			Image:   it.Image,
		})
	}

	items = DedupeByURLTitle(items)
	DailyShuffle(items, "agro", r.now())
	return limit(items, agroLimit)
}
