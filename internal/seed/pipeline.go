package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/albapepper/hoopstats-data/internal/fetch"
	"github.com/albapepper/hoopstats-data/internal/normalize"
	"github.com/albapepper/hoopstats-data/internal/provider"
)

// Record kinds.
const (
	KindMetadata = "metadata"
	KindGameLogs = "gamelogs"
)

// Pipeline composes Fetcher -> Normalizer -> Upserter, one kind at a time.
type Pipeline struct {
	fetcher  *fetch.Fetcher
	upserter *Upserter
	logger   *slog.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(fetcher *fetch.Fetcher, upserter *Upserter, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{fetcher: fetcher, upserter: upserter, logger: logger}
}

// RunMetadata pulls, cleans and stores player metadata. Per-player fetch
// failures are recorded in the result; the returned error is reserved for
// store failures, which end the run.
func (p *Pipeline) RunMetadata(ctx context.Context, roster []provider.PlayerRef) (Result, error) {
	result := Result{Kind: KindMetadata, Players: len(roster)}

	raw, report := p.fetcher.FetchMetadata(ctx, roster)
	result.Fetched = len(raw)
	addFailures(&result, report)
	if len(raw) == 0 {
		p.logger.Warn("No metadata to store", "summary", result.Summary())
		return result, nil
	}

	clean := normalize.Metadata(raw, p.logger)
	result.Normalized = len(clean)

	n, err := p.upserter.UpsertMetadata(storeContext(ctx, report), clean)
	if err != nil {
		p.logger.Error("Metadata upsert failed", "error", err)
		return result, fmt.Errorf("store metadata: %w", err)
	}
	result.Upserted = n

	p.logger.Info("Metadata run complete", "summary", result.Summary())
	return result, nil
}

// RunGameLogs pulls, cleans and stores game logs for season.
func (p *Pipeline) RunGameLogs(ctx context.Context, roster []provider.PlayerRef, season string) (Result, error) {
	result := Result{Kind: KindGameLogs, Players: len(roster)}

	raw, report := p.fetcher.FetchGameLogs(ctx, roster, season)
	result.Fetched = len(raw)
	addFailures(&result, report)
	if len(raw) == 0 {
		p.logger.Warn("No game logs to store", "summary", result.Summary())
		return result, nil
	}

	clean := normalize.GameLogs(raw, p.logger)
	result.Normalized = len(clean)

	n, err := p.upserter.UpsertGameLogs(storeContext(ctx, report), clean)
	if err != nil {
		p.logger.Error("Game log upsert failed", "error", err)
		return result, fmt.Errorf("store game logs: %w", err)
	}
	result.Upserted = n

	p.logger.Info("Game log run complete", "season", season, "summary", result.Summary())
	return result, nil
}

// storeContext keeps an interrupted sweep's rows: the upsert runs even
// though ctx is already cancelled.
func storeContext(ctx context.Context, report fetch.Report) context.Context {
	if report.Interrupted {
		return context.WithoutCancel(ctx)
	}
	return ctx
}

func addFailures(r *Result, report fetch.Report) {
	for _, f := range report.Failures {
		r.AddErrorf("fetch %s: %v", f.Player.Name, f.Err)
	}
	if report.Interrupted {
		r.AddErrorf("sweep interrupted after %d of %d players", report.Processed, report.Requested)
	}
}
