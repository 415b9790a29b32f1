package aggregator

import (
	"context"
	"log"

	"podborka/pkg/domain"
)

const screenLimit = 5

// placeholder shown instead of failing when the catalog credential is absent
var noCatalogKey = domain.Item{
	Title:   "Нет TMDB ключа",
	Summary: "Задайте TMDB_API_KEY в окружении или tmdb.api_key в конфигурации и перезапустите сервис.",
}

// series serves the ranked TV catalog.
func (r *Registry) series(ctx context.Context) []domain.Item {
	return r.catalogTopic(ctx, "series", r.catalog.DiscoverTV)
}

// movies serves the ranked movie catalog.
func (r *Registry) movies(ctx context.Context) []domain.Item {
	return r.catalogTopic(ctx, "movies", r.catalog.DiscoverMovies)
}

func (r *Registry) catalogTopic(ctx context.Context, salt string, discover func(context.Context) ([]domain.Item, error)) []domain.Item {
	if !r.catalog.Enabled() {
		return []domain.Item{noCatalogKey}
	}

	items, err := discover(ctx)
	if err != nil {
		log.Printf("[WARN] catalog discover for %s failed: %v", salt, err)
		return nil
	}

	DailyShuffle(items, salt, r.now())
	return limit(items, screenLimit)
}
