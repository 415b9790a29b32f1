package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podborka/pkg/domain"
)

func TestStore_SetGet(t *testing.T) {
	s := NewStore()

	items := []domain.Item{{Title: "one"}, {Title: "two"}}
	s.Set("agro", items, time.Minute)

	got, ok := s.Get("agro")
	require.True(t, ok)
	assert.Equal(t, items, got)

	_, ok = s.Get("unknown")
	assert.False(t, ok)
}

func TestStore_TTLExpiry(t *testing.T) {
	s := NewStore()
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Set("svo", []domain.Item{{Title: "t"}}, 10*time.Minute)

	// within the window
	current = current.Add(9 * time.Minute)
	_, ok := s.Get("svo")
	assert.True(t, ok)

	// exactly at the boundary still fresh, strictly beyond expired
	current = current.Add(time.Minute)
	_, ok = s.Get("svo")
	assert.True(t, ok)

	current = current.Add(time.Second)
	_, ok = s.Get("svo")
	assert.False(t, ok)
}

func TestStore_SetResetsFreshness(t *testing.T) {
	s := NewStore()
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Set("ai", []domain.Item{{Title: "old"}}, time.Hour)
	current = current.Add(50 * time.Minute)
	s.Set("ai", []domain.Item{{Title: "new"}}, time.Hour)

	current = current.Add(50 * time.Minute)
	got, ok := s.Get("ai")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Title)
}

func TestStore_EmptyResultCached(t *testing.T) {
	s := NewStore()
	s.Set("movies", []domain.Item{}, time.Minute)

	got, ok := s.Get("movies")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set("topic", []domain.Item{{Title: "x"}}, time.Minute)
		}()
		go func() {
			defer wg.Done()
			s.Get("topic")
		}()
	}
	wg.Wait()

	_, ok := s.Get("topic")
	assert.True(t, ok)
}
