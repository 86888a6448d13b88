package images

import (
	"context"
	"log/slog"

	"article_agent/generator"
)

// Searcher is the primary stock-photo tier.
type Searcher interface {
	Search(ctx context.Context, query string) (string, bool)
}

// Generator is the text-to-image fallback tier.
type Generator interface {
	Generate(ctx context.Context, title string) (string, bool)
}

// Sourcer is the strict two-tier header-image fallback: search first,
// generate second, no retries within a tier and no racing. The
// search-first ordering is a cost choice, not a quality one.
type Sourcer struct {
	search   Searcher
	generate Generator
	log      *slog.Logger
}

func NewSourcer(search Searcher, generate Generator, log *slog.Logger) *Sourcer {
	if log == nil {
		log = slog.Default()
	}
	return &Sourcer{search: search, generate: generate, log: log}
}

// HeaderImage implements generator.ImageSourcer. A search hit
// short-circuits; the generation tier is never invoked in that case.
func (s *Sourcer) HeaderImage(ctx context.Context, title string) (string, generator.ImageSource, bool) {
	if s.search != nil {
		if u, ok := s.search.Search(ctx, title); ok {
			s.log.Info("header image found", "source", generator.ImageSourceFreepik)
			return u, generator.ImageSourceFreepik, true
		}
	}
	if s.generate != nil {
		if u, ok := s.generate.Generate(ctx, title); ok {
			s.log.Info("header image generated", "source", generator.ImageSourceDallE)
			return u, generator.ImageSourceDallE, true
		}
	}
	return "", "", false
}
