package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"flyerplan/internal/config"
	"flyerplan/internal/domain/service/deals"
	"flyerplan/internal/infrastructure/export"
	"flyerplan/internal/infrastructure/flipp"
	"flyerplan/internal/infrastructure/notifier"
	"flyerplan/internal/infrastructure/planner"
	"flyerplan/internal/infrastructure/recipes"
	"flyerplan/internal/worker"
	"flyerplan/pkg/application/modules"
	"flyerplan/pkg/contextx"
)

func Run(ctx context.Context, log *slog.Logger, cancel context.CancelFunc) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log)

	g, ctx := errgroup.WithContext(ctx)

	// 2. Observability
	if cfg.App.ProbeAddress != "" {
		modules.ProbeServer{
			Name:          cfg.App.Name,
			Version:       cfg.App.Version,
			ListenAddress: cfg.App.ProbeAddress,
		}.Run(ctx, g)
	}

	if cfg.App.MetricsAddress != "" {
		modules.MetricServer{
			ListenAddress: cfg.App.MetricsAddress,
		}.Run(ctx, g)
	}

	// 3. Flyer source, selected by configuration
	flippClient := flipp.NewClient(cfg.Flipp)

	var source deals.Source

	switch cfg.Flipp.Strategy {
	case config.StrategyFlyers:
		source = flipp.NewFlyerSource(flippClient, cfg.Flipp)
	default:
		source = flipp.NewSearchSource(flippClient, cfg.Flipp)
	}

	log.Info("flyer source ready",
		"strategy", cfg.Flipp.Strategy, "postal_code", cfg.Flipp.PostalCode)

	// 4. Pipeline
	gemini, err := planner.NewGemini(ctx, cfg.Planner)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	runner := worker.NewPlanRunner(
		deals.NewAggregator(source),
		export.NewCSVWriter(cfg.App.ExportPath),
		gemini,
		notifier.NewEmailSender(cfg.SMTP),
	)

	if cfg.Recipe.Verify {
		runner = runner.WithVerifier(recipes.NewClient(cfg.Recipe))
		log.Info("recipe verification enabled")
	}

	if cfg.App.RunInterval > 0 {
		runner = runner.WithInterval(cfg.App.RunInterval)
		log.Info("periodic mode", "interval", cfg.App.RunInterval)
	}

	g.Go(func() error {
		// A finished single-shot run also stops the probe/metrics servers.
		defer cancel()

		if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("runner: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
