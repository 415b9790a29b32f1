package aggregator

import (
	"context"
	"time"

	"podborka/pkg/domain"
	"podborka/pkg/filter"
)

// TelegramSource provides messages from public channel feeds.
type TelegramSource interface {
	Fetch(ctx context.Context, channels []string, perChannel, total int) []domain.Item
}

// LinkSource provides candidate links scraped from HTML listing pages.
type LinkSource interface {
	Fetch(ctx context.Context, pageURL string, minTitleLen int, keep func(title string) bool) ([]domain.Item, error)
}

// CatalogSource provides ranked catalog data (series, movies).
type CatalogSource interface {
	Enabled() bool
	DiscoverTV(ctx context.Context) ([]domain.Item, error)
	DiscoverMovies(ctx context.Context) ([]domain.Item, error)
}

// EventsSource provides structured event listings.
type EventsSource interface {
	Events(ctx context.Context, keep func(title string) bool) ([]domain.Item, error)
}

// Config holds per-topic source lists.
type Config struct {
	EventsSite     string   // HTML listing page for the events topic
	AgroSites      []string // agro news listing pages
	AISites        []string // AI/tech news listing pages
	EventsChannels []string // telegram channels per topic
	AgroChannels   []string
	SVOChannels    []string
}

// Registry maps topics to their aggregation pipelines. Every pipeline runs
// its adapters, filters, deduplicates, applies the deterministic daily
// shuffle and truncates to the topic limit. Source failures contribute zero
// items and never fail a topic.
type Registry struct {
	telegram TelegramSource
	links    LinkSource
	catalog  CatalogSource
	events   EventsSource
	cfg      Config
	now      func() time.Time

	eventsRules filter.Rules
	agroRules   filter.Rules
	svoRules    filter.Rules
	aiRules     filter.Rules
}

// New creates the topic registry.
func New(telegram TelegramSource, links LinkSource, catalog CatalogSource, events EventsSource, cfg Config) *Registry {
	return &Registry{
		telegram:    telegram,
		links:       links,
		catalog:     catalog,
		events:      events,
		cfg:         cfg,
		now:         time.Now,
		eventsRules: filter.Events(),
		agroRules:   filter.Agro(),
		svoRules:    filter.SVO(),
		aiRules:     filter.AI(),
	}
}

// Aggregate runs the pipeline for the topic. Unknown topics yield an empty
// result, not an error.
func (r *Registry) Aggregate(ctx context.Context, topic string) ([]domain.Item, error) {
	switch domain.Topic(topic) {
	case domain.TopicAfisha:
		return r.afisha(ctx), nil
	case domain.TopicSeries:
		return r.series(ctx), nil
	case domain.TopicMovies:
		return r.movies(ctx), nil
	case domain.TopicAgro:
		return r.agro(ctx), nil
	case domain.TopicSVO:
		return r.svo(ctx), nil
	case domain.TopicAI:
		return r.ai(ctx), nil
	default:
		return nil, nil
	}
}

func limit(items []domain.Item, n int) []domain.Item {
	if len(items) > n {
		return items[:n]
	}
	return items
}
