package aggregator

import (
	"context"

	"podborka/pkg/domain"
)

const (
	svoLimit         = 10
	svoTitleLimit    = 160
	svoSummaryLimit  = 240
	svoPerChannel    = 6 // larger raw batch, the filter is strict
	svoChannelsTotal = 40
)

// svo collects conflict news from telegram channels. The batch arrives
// time-sorted, so the limit keeps the newest items; the daily shuffle only
// permutes the selected set.
func (r *Registry) svo(ctx context.Context) []domain.Item {
	raw := r.telegram.Fetch(ctx, r.cfg.SVOChannels, svoPerChannel, svoChannelsTotal)

	var items []domain.Item
	for _, it := range raw {
		if it.Title == "" || !r.svoRules.Match(it.Title) {
			continue
		}
		items = append(items, domain.Item{
			Title:   domain.Truncate(it.Title, svoTitleLimit),
			Summary: domain.Truncate(it.Summary, svoSummaryLimit),
			URL:     it.URL,
			Image:   it.Image,
		})
	}

	items = limit(DedupeByTitle(items), svoLimit)
	DailyShuffle(items, "svo", r.now())
	return items
}
