package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	// EntriesClassified counts shortcode entries by literal kind.
	EntriesClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emoji_sheet_entries_classified_total",
			Help: "Total number of shortcode entries classified from the GitHub emoji endpoint.",
		},
		[]string{"kind"}, // kind: unicode, custom
	)

	// ChartRows counts glyph rows seen in the chart stream.
	ChartRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emoji_sheet_chart_rows_total",
			Help: "Total number of glyph rows seen in the Unicode emoji chart.",
		},
	)

	// ChartRowsMatched counts chart rows whose key matched a shortcode group.
	ChartRowsMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emoji_sheet_chart_rows_matched_total",
			Help: "Total number of chart rows joined to a shortcode group.",
		},
	)

	// ChartRowsUnmatched counts chart rows with no shortcode for their key.
	ChartRowsUnmatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emoji_sheet_chart_rows_unmatched_total",
			Help: "Total number of chart rows skipped because no shortcode shares their key.",
		},
	)

	// ShortcodesDropped counts Unicode shortcodes whose key never appeared
	// in the chart.
	ShortcodesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emoji_sheet_shortcodes_dropped_total",
			Help: "Total number of Unicode shortcodes dropped for lack of a chart row.",
		},
	)
)

// StartServer starts the Prometheus metrics HTTP server.
func StartServer(addr string) {
	if addr == "" {
		log.Info().Msg("Metrics server address not configured, Prometheus endpoint will not be available.")
		return
	}

	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.Handler())

	log.Info().Str("address", addr).Msg("Starting Prometheus metrics server")
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Prometheus metrics server failed")
		}
	}()
}
