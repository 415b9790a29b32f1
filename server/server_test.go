package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podborka/pkg/domain"
)

type providerMock struct {
	items map[string][]domain.Item
	last  struct {
		topic string
		force bool
	}
}

func (p *providerMock) Items(_ context.Context, topic string, force bool) []domain.Item {
	p.last.topic = topic
	p.last.force = force
	items := p.items[topic]
	if items == nil {
		items = []domain.Item{}
	}
	return items
}

type configMock struct{}

func (configMock) GetServerConfig() (string, time.Duration) { return ":0", 5 * time.Second }

func testServer(t *testing.T, provider Provider) *httptest.Server {
	s := New(configMock{}, provider, "test", false)
	ts := httptest.NewServer(s.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Data(t *testing.T) {
	provider := &providerMock{items: map[string][]domain.Item{
		"agro": {
			{Title: "Экспорт зерна вырос", Summary: "подробности", URL: "https://example.com/1", Image: "https://example.com/1.jpg"},
			{Title: "Субсидии фермерам", URL: "https://example.com/2"},
		},
	}}
	ts := testServer(t, provider)

	resp, err := http.Get(ts.URL + "/data?topic=agro")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var items []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "Экспорт зерна вырос", items[0]["title"])
	assert.Equal(t, "https://example.com/1.jpg", items[0]["image"])
	assert.NotContains(t, items[0], "timestamp")

	assert.Equal(t, "agro", provider.last.topic)
	assert.False(t, provider.last.force)
}

func TestServer_DataForce(t *testing.T) {
	provider := &providerMock{}
	ts := testServer(t, provider)

	for _, val := range []string{"1", "true"} {
		resp, err := http.Get(ts.URL + "/data?topic=svo&force=" + val)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, provider.last.force, "force=%s should bypass cache", val)
	}

	resp, err := http.Get(ts.URL + "/data?topic=svo&force=0")
	require.NoError(t, err)
	resp.Body.Close()
	assert.False(t, provider.last.force)
}

func TestServer_DataUnknownTopic(t *testing.T) {
	ts := testServer(t, &providerMock{})

	resp, err := http.Get(ts.URL + "/data?topic=doesnotexist")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestServer_DataMissingTopic(t *testing.T) {
	ts := testServer(t, &providerMock{})

	resp, err := http.Get(ts.URL + "/data")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestServer_Health(t *testing.T) {
	ts := testServer(t, &providerMock{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestServer_Static(t *testing.T) {
	ts := testServer(t, &providerMock{})

	t.Run("index", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Моя подборка")
	})

	t.Run("service worker", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/sw.js")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("manifest", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/manifest.webmanifest")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestServer_Ping(t *testing.T) {
	ts := testServer(t, &providerMock{})

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_RunAndShutdown(t *testing.T) {
	s := New(configMock{}, &providerMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
