package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podborka/pkg/fetch"
)

func TestKudaGo_Events(t *testing.T) {
	// 2024-06-01 18:30 MSK
	start := time.Date(2024, 6, 1, 18, 30, 0, 0, time.FixedZone("MSK", 3*3600)).Unix()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "msk", q.Get("location"))
		assert.Equal(t, "40", q.Get("page_size"))
		assert.Equal(t, "-publication_date", q.Get("order_by"))
		assert.Equal(t, "place", q.Get("expand"))
		assert.Equal(t, "plain", q.Get("text_format"))
		assert.NotEmpty(t, q.Get("actual_since"))
		assert.NotEmpty(t, q.Get("actual_until"))

		w.Write([]byte(`{"results":[
			{"title":"Выставка современного искусства","dates":[{"start":` + strconv.FormatInt(start, 10) + `}],
			 "place":{"title":"Центр искусств"},"site_url":"https://kudago.com/e/1",
			 "images":[{"image":"https://img.kudago.com/1.jpg"}]},
			{"title":"Лекция о космосе","dates":[],"description":"Популярная лекция","site_url":"https://kudago.com/e/2"},
			{"title":"Концерт без деталей","site_url":"https://kudago.com/e/3"},
			{"title":"Отклоняется фильтром","site_url":"https://kudago.com/e/4"}
		]}`)) //nolint:errcheck
	}))
	defer server.Close()

	kg := NewKudaGo(fetch.New(5*time.Second, "", ""), KudaGoConfig{BaseURL: server.URL})
	keep := func(title string) bool { return !strings.Contains(title, "Отклоняется") }

	items, err := kg.Events(context.Background(), keep)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Выставка современного искусства", items[0].Title)
	assert.Equal(t, "01.06 18:30 · Центр искусств", items[0].Summary)
	assert.Equal(t, "https://kudago.com/e/1", items[0].URL)
	assert.Equal(t, "https://img.kudago.com/1.jpg", items[0].Image)

	// no date and no place falls back to the description
	assert.Equal(t, "Популярная лекция", items[1].Summary)

	// nothing at all falls back to a generic label
	assert.Equal(t, "Событие", items[2].Summary)
	assert.Empty(t, items[2].Image)
}

func TestKudaGo_EventsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	kg := NewKudaGo(fetch.New(5*time.Second, "", ""), KudaGoConfig{BaseURL: server.URL})
	_, err := kg.Events(context.Background(), nil)
	require.Error(t, err)
}
