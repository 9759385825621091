package chart

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// BodyFetcher is the slice of the HTTP layer the chart source needs.
type BodyFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Source fetches the chart from the live endpoint.
type Source struct {
	fetcher BodyFetcher
	url     string
}

// NewSource creates a Source fetching from the given chart URL.
func NewSource(fetcher BodyFetcher, chartURL string) *Source {
	return &Source{fetcher: fetcher, url: chartURL}
}

// Fetch retrieves the chart document. Fetching and walking are separate
// so the chart can download in parallel with the shortcode source; the
// walk itself needs the shortcode indexes in place.
func (s *Source) Fetch(ctx context.Context) (*Document, error) {
	body, err := s.fetcher.Get(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("fetching chart %s: %w", s.url, err)
	}
	log.Info().Int("bytes", len(body)).Str("url", s.url).Msg("Chart document loaded")
	return &Document{body: body}, nil
}

// Document is a fetched, not-yet-parsed chart.
type Document struct {
	body []byte
}

// Walk streams the document's events to visit, in document order.
func (d *Document) Walk(visit func(Event) error) error {
	return Walk(bytes.NewReader(d.body), visit)
}
