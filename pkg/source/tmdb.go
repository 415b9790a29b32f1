package source

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"podborka/pkg/domain"
	"podborka/pkg/fetch"
)

// allowedLanguages is the fixed allow-list of original languages for the
// ranked catalog topics.
var allowedLanguages = map[string]bool{
	"en": true, "ru": true, "ko": true, "ja": true,
	"es": true, "fr": true, "de": true, "it": true,
}

const tmdbOverviewLimit = 220

// TMDBConfig holds discovery API settings. Zero values get sane defaults.
type TMDBConfig struct {
	APIKey        string
	BaseURL       string  // api endpoint, default https://api.themoviedb.org/3
	SiteURL       string  // canonical site for item links
	ImageBaseURL  string  // full-size image host template
	Language      string  // response language
	MinRating     float64 // vote_average lower bound
	MinVotesTV    int
	MinVotesMovie int
}

// TMDB is the structured-API adapter for ranked catalog data (series, movies).
type TMDB struct {
	client *fetch.Client
	cfg    TMDBConfig
	now    func() time.Time
}

// NewTMDB creates the adapter with defaults applied.
func NewTMDB(client *fetch.Client, cfg TMDBConfig) *TMDB {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "https://www.themoviedb.org"
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = "https://image.tmdb.org/t/p/w780"
	}
	if cfg.Language == "" {
		cfg.Language = "ru-RU"
	}
	if cfg.MinRating == 0 {
		cfg.MinRating = 7.0
	}
	if cfg.MinVotesTV == 0 {
		cfg.MinVotesTV = 100
	}
	if cfg.MinVotesMovie == 0 {
		cfg.MinVotesMovie = 200
	}
	return &TMDB{client: client, cfg: cfg, now: time.Now}
}

// Enabled reports whether the API credential is configured.
func (t *TMDB) Enabled() bool { return t.cfg.APIKey != "" }

type tmdbEntry struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	OriginalName     string  `json:"original_name"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
}

type tmdbResponse struct {
	Results []tmdbEntry `json:"results"`
}

// DiscoverTV returns recent well-rated series.
func (t *TMDB) DiscoverTV(ctx context.Context) ([]domain.Item, error) {
	params := t.baseParams()
	params.Set("first_air_date.gte", t.dateLowerBound())
	params.Set("vote_count.gte", strconv.Itoa(t.cfg.MinVotesTV))
	return t.discover(ctx, "/discover/tv", "tv", "Сериал", params)
}

// DiscoverMovies returns recent well-rated movies.
func (t *TMDB) DiscoverMovies(ctx context.Context) ([]domain.Item, error) {
	params := t.baseParams()
	params.Set("primary_release_date.gte", t.dateLowerBound())
	params.Set("vote_count.gte", strconv.Itoa(t.cfg.MinVotesMovie))
	return t.discover(ctx, "/discover/movie", "movie", "Фильм", params)
}

func (t *TMDB) baseParams() url.Values {
	params := url.Values{}
	params.Set("api_key", t.cfg.APIKey)
	params.Set("language", t.cfg.Language)
	params.Set("sort_by", "vote_average.desc")
	params.Set("vote_average.gte", strconv.FormatFloat(t.cfg.MinRating, 'f', 1, 64))
	params.Set("include_adult", "false")
	params.Set("page", "1")
	return params
}

// dateLowerBound is six months back from today in the reference zone.
func (t *TMDB) dateLowerBound() string {
	return t.now().In(domain.MSK).AddDate(0, 0, -182).Format("2006-01-02")
}

func (t *TMDB) discover(ctx context.Context, path, kind, fallbackTitle string, params url.Values) ([]domain.Item, error) {
	var resp tmdbResponse
	if err := t.client.JSON(ctx, t.cfg.BaseURL+path, params, &resp); err != nil {
		return nil, fmt.Errorf("tmdb %s: %w", path, err)
	}

	var items []domain.Item
	for _, e := range resp.Results {
		if !allowedLanguages[e.OriginalLanguage] {
			continue
		}

		title := e.Name
		if title == "" {
			title = e.OriginalName
		}
		if title == "" {
			title = e.Title
		}
		if title == "" {
			title = e.OriginalTitle
		}
		if title == "" {
			title = fallbackTitle
		}

		overview := e.Overview
		if overview == "" {
			overview = "Описание отсутствует."
		}

		rating := "Рейтинг TMDB: н/д"
		if e.VoteAverage > 0 {
			rating = fmt.Sprintf("Рейтинг TMDB: %.1f (%d оценок)", e.VoteAverage, e.VoteCount)
		}

		img := ""
		if e.PosterPath != "" {
			img = t.cfg.ImageBaseURL + e.PosterPath
		}

		link := ""
		if e.ID != 0 {
			link = fmt.Sprintf("%s/%s/%d", t.cfg.SiteURL, kind, e.ID)
		}

		items = append(items, domain.Item{
			Title:   title,
			Summary: fmt.Sprintf("%s. %s", rating, domain.Truncate(domain.CleanText(overview), tmdbOverviewLimit)),
			URL:     link,
			Image:   img,
		})
	}
	return items, nil
}
