package images

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*FreepikClient, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	c := NewFreepikClient("test-key", ts.Client(), testLogger())
	c.BaseURL = ts.URL
	return c, ts
}

func TestSearch_AttributesShape(t *testing.T) {
	var gotAuth, gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[{"attributes":{"preview":{"url":"http://img/a.jpg"}}}]}`))
	})

	u, ok := c.Search(context.Background(), "solar power")
	require.True(t, ok)
	assert.Equal(t, "http://img/a.jpg", u)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Contains(t, gotQuery, "term=solar+power")
	assert.Contains(t, gotQuery, "limit=1")
	assert.Contains(t, gotQuery, "filters%5Bcontent_type%5D=photo")
}

func TestSearch_ImagesShape(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[{"images":{"preview":{"url":"http://img/b.jpg"}}}]}`))
	})

	u, ok := c.Search(context.Background(), "q")
	require.True(t, ok)
	assert.Equal(t, "http://img/b.jpg", u)
}

func TestSearch_UnknownShapeIsAMiss(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[{"thumbnails":{"small":"http://img/c.jpg"}}]}`))
	})

	_, ok := c.Search(context.Background(), "q")
	assert.False(t, ok)
}

func TestSearch_EmptyData(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	_, ok := c.Search(context.Background(), "q")
	assert.False(t, ok)
}

func TestSearch_Non200(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, ok := c.Search(context.Background(), "q")
	assert.False(t, ok)
}

func TestSearch_MalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, ok := c.Search(context.Background(), "q")
	assert.False(t, ok)
}

func TestSearch_MissingCredentialSkipsNetwork(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls++
	}))
	defer ts.Close()

	c := NewFreepikClient("", ts.Client(), testLogger())
	c.BaseURL = ts.URL

	_, ok := c.Search(context.Background(), "q")
	assert.False(t, ok)
	assert.Zero(t, calls)
}

func TestSearch_TransportErrorIsAMiss(t *testing.T) {
	c := NewFreepikClient("key", nil, testLogger())
	c.BaseURL = "http://127.0.0.1:1" // nothing listens here

	_, ok := c.Search(context.Background(), "q")
	assert.False(t, ok)
}
