package images

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article_agent/generator"
)

type stubSearcher struct {
	calls int
	url   string
	ok    bool
}

func (s *stubSearcher) Search(_ context.Context, _ string) (string, bool) {
	s.calls++
	return s.url, s.ok
}

type stubGenerator struct {
	calls int
	url   string
	ok    bool
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, bool) {
	g.calls++
	return g.url, g.ok
}

func TestHeaderImage_SearchHitShortCircuits(t *testing.T) {
	search := &stubSearcher{url: "http://freepik/img", ok: true}
	gen := &stubGenerator{url: "http://dalle/img", ok: true}
	s := NewSourcer(search, gen, testLogger())

	u, source, ok := s.HeaderImage(context.Background(), "T")
	require.True(t, ok)
	assert.Equal(t, "http://freepik/img", u)
	assert.Equal(t, generator.ImageSourceFreepik, source)
	assert.Zero(t, gen.calls, "generation tier must not run after a search hit")
}

func TestHeaderImage_FallsBackToGeneration(t *testing.T) {
	search := &stubSearcher{ok: false}
	gen := &stubGenerator{url: "http://dalle/img", ok: true}
	s := NewSourcer(search, gen, testLogger())

	u, source, ok := s.HeaderImage(context.Background(), "T")
	require.True(t, ok)
	assert.Equal(t, "http://dalle/img", u)
	assert.Equal(t, generator.ImageSourceDallE, source)
	assert.Equal(t, 1, search.calls)
	assert.Equal(t, 1, gen.calls)
}

func TestHeaderImage_BothTiersMiss(t *testing.T) {
	s := NewSourcer(&stubSearcher{}, &stubGenerator{}, testLogger())

	u, source, ok := s.HeaderImage(context.Background(), "T")
	assert.False(t, ok)
	assert.Empty(t, u)
	assert.Empty(t, source)
}

func TestHeaderImage_NilSearcherGoesStraightToGeneration(t *testing.T) {
	gen := &stubGenerator{url: "http://dalle/img", ok: true}
	s := NewSourcer(nil, gen, testLogger())

	u, source, ok := s.HeaderImage(context.Background(), "T")
	require.True(t, ok)
	assert.Equal(t, "http://dalle/img", u)
	assert.Equal(t, generator.ImageSourceDallE, source)
}

func TestHeaderImage_UnsetCredentialScenario(t *testing.T) {
	// Search tier present but without a credential: it must yield a
	// miss with no network call, and the run falls through to dall-e.
	search := NewFreepikClient("", nil, testLogger())
	gen := &stubGenerator{url: "http://dalle/img", ok: true}
	s := NewSourcer(search, gen, testLogger())

	u, source, ok := s.HeaderImage(context.Background(), "Future of Solar Power")
	require.True(t, ok)
	assert.Equal(t, "http://dalle/img", u)
	assert.Equal(t, generator.ImageSourceDallE, source)
}
