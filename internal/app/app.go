package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/chart"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/config"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/emoji"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/github"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/httpclient"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/manifest"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/metrics"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/render"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/pkg/interfaces"
)

// Application holds all dependencies for one cheat sheet run.
type Application struct {
	Config     *config.AppConfig
	Shortcodes interfaces.ShortcodeSource
	Chart      interfaces.ChartSource
	Renderer   interfaces.Renderer
}

// NewApplication wires the default sources and renderer from config.
func NewApplication(cfg *config.AppConfig) *Application {
	factory := httpclient.NewFactory(cfg.Proxy)
	fetcher := httpclient.NewFetcher(factory, cfg.RequestsPerSecond, cfg.UserAgent)

	return &Application{
		Config:     cfg,
		Shortcodes: github.NewClient(fetcher, cfg.EmojiAPIURL),
		Chart:      chart.NewSource(fetcher, cfg.ChartURL),
		Renderer: render.NewMarkdown(cfg.Columns, cfg.TOCTitle, []render.Resource{
			{Name: "GitHub Emoji API", URL: cfg.EmojiAPIURL},
			{Name: "Unicode Full Emoji List", URL: cfg.ChartURL},
		}),
	}
}

// Generate fetches both upstream sources (concurrently; the join needs
// both fully materialized) and runs the categorization pipeline.
func (a *Application) Generate(ctx context.Context) (*emoji.Categorized, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		entries []emoji.Entry
		doc     *chart.Document
	)
	errCh := make(chan error, 2)
	go func() {
		var err error
		entries, err = a.Shortcodes.Fetch(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		doc, err = a.Chart.Fetch(ctx)
		errCh <- err
	}()
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			return nil, err
		}
	}

	categorizer := emoji.NewCategorizer(entries)
	if err := doc.Walk(categorizer.Apply); err != nil {
		return nil, fmt.Errorf("walking chart: %w", err)
	}
	tree := categorizer.Result()
	log.Info().Int("categories", tree.Len()).Msg("Categorization complete")
	return tree, nil
}

// Run generates the cheat sheet and writes it to the configured path.
func (a *Application) Run(ctx context.Context) error {
	metrics.StartServer(a.Config.MetricsAddr)

	title := a.Config.Title
	if title == "" {
		name, err := manifest.ModuleName(a.Config.ManifestPath)
		if err != nil {
			return fmt.Errorf("resolving document title: %w", err)
		}
		title = name
	}

	tree, err := a.Generate(ctx)
	if err != nil {
		return err
	}

	document := a.Renderer.Render(title, tree)
	if a.Config.DryRun {
		log.Info().Str("output", a.Config.OutputPath).Int("bytes", len(document)).
			Msg("Dry run: skipping output write")
		return nil
	}
	if err := os.WriteFile(a.Config.OutputPath, []byte(document), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", a.Config.OutputPath, err)
	}
	log.Info().Str("output", a.Config.OutputPath).Int("bytes", len(document)).Msg("Cheat sheet written")
	return nil
}
