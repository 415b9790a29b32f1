package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podborka/pkg/fetch"
)

func TestTMDB_DiscoverTV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/tv", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "ru-RU", q.Get("language"))
		assert.Equal(t, "vote_average.desc", q.Get("sort_by"))
		assert.Equal(t, "7.0", q.Get("vote_average.gte"))
		assert.Equal(t, "100", q.Get("vote_count.gte"))
		assert.Equal(t, "false", q.Get("include_adult"))
		assert.Equal(t, "1", q.Get("page"))
		assert.NotEmpty(t, q.Get("first_air_date.gte"))

		w.Write([]byte(`{"results":[
			{"id":10,"name":"Хороший сериал","original_language":"en","vote_average":8.25,"vote_count":321,
			 "overview":"Описание сериала","poster_path":"/poster.jpg"},
			{"id":11,"name":"Фильтруется по языку","original_language":"zh","vote_average":9.0,"vote_count":500},
			{"id":12,"original_name":"No Local Name","original_language":"en","vote_average":0,"vote_count":0}
		]}`)) //nolint:errcheck
	}))
	defer server.Close()

	tmdb := NewTMDB(fetch.New(5*time.Second, "", ""), TMDBConfig{APIKey: "test-key", BaseURL: server.URL})
	items, err := tmdb.DiscoverTV(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Хороший сериал", items[0].Title)
	assert.Equal(t, "Рейтинг TMDB: 8.2 (321 оценок). Описание сериала", items[0].Summary)
	assert.Equal(t, "https://www.themoviedb.org/tv/10", items[0].URL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w780/poster.jpg", items[0].Image)

	// no local name falls back to the original, zero rating renders as n/a
	assert.Equal(t, "No Local Name", items[1].Title)
	assert.Equal(t, "Рейтинг TMDB: н/д. Описание отсутствует.", items[1].Summary)
	assert.Empty(t, items[1].Image)
}

func TestTMDB_DiscoverMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "200", q.Get("vote_count.gte"))
		assert.NotEmpty(t, q.Get("primary_release_date.gte"))

		w.Write([]byte(`{"results":[
			{"id":5,"title":"Хороший фильм","original_language":"fr","vote_average":7.5,"vote_count":250,"overview":"o"}
		]}`)) //nolint:errcheck
	}))
	defer server.Close()

	tmdb := NewTMDB(fetch.New(5*time.Second, "", ""), TMDBConfig{APIKey: "k", BaseURL: server.URL})
	items, err := tmdb.DiscoverMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Хороший фильм", items[0].Title)
	assert.Equal(t, "https://www.themoviedb.org/movie/5", items[0].URL)
}

func TestTMDB_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		tmdb := NewTMDB(fetch.New(5*time.Second, "", ""), TMDBConfig{APIKey: "bad", BaseURL: server.URL})
		_, err := tmdb.DiscoverTV(context.Background())
		require.Error(t, err)
	})

	t.Run("enabled only with key", func(t *testing.T) {
		assert.False(t, NewTMDB(nil, TMDBConfig{}).Enabled())
		assert.True(t, NewTMDB(nil, TMDBConfig{APIKey: "k"}).Enabled())
	})
}
