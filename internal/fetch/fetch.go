// Package fetch walks a player roster against a stats source, one call per
// player, pausing between calls. A failing player is logged and skipped; it
// never aborts the sweep.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/hoopstats-data/internal/provider"
)

// Source is the external stats API as the fetcher sees it.
type Source interface {
	ActivePlayers(ctx context.Context) ([]provider.PlayerRef, error)
	PlayerGameLog(ctx context.Context, playerID int64, season string) (provider.Rows, error)
	PlayerInfo(ctx context.Context, playerID int64) (provider.Row, error)
}

// Options configures pacing and derived fields.
type Options struct {
	GameLogDelay     time.Duration
	MetadataDelay    time.Duration
	HeadshotTemplate string
}

// Fetcher pulls per-player data from a Source.
type Fetcher struct {
	source Source
	opts   Options
	logger *slog.Logger
}

// New creates a Fetcher.
func New(source Source, opts Options, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{source: source, opts: opts, logger: logger}
}

// Roster returns the active players, optionally narrowed to ids.
func (f *Fetcher) Roster(ctx context.Context, ids []int64) ([]provider.PlayerRef, error) {
	players, err := f.source.ActivePlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return players, nil
	}

	byID := make(map[int64]provider.PlayerRef, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	selected := make([]provider.PlayerRef, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			// Not on an active roster; the API still answers for retired players.
			p = provider.PlayerRef{ID: id, Name: "Player " + strconv.FormatInt(id, 10)}
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// FetchGameLogs pulls every player's game log for season and concatenates
// the rows. Each row is stamped with PLAYER_ID and PLAYER_NAME.
func (f *Fetcher) FetchGameLogs(ctx context.Context, roster []provider.PlayerRef, season string) (provider.Rows, Report) {
	f.logger.Info("Pulling game logs", "players", len(roster), "season", season)

	all := provider.Rows{}
	report := f.sweep(ctx, roster, f.opts.GameLogDelay, "logs", func(p provider.PlayerRef) (int, error) {
		rows, err := f.source.PlayerGameLog(ctx, p.ID, season)
		if err != nil {
			return 0, err
		}
		for _, row := range rows {
			row = row.Clone()
			row["PLAYER_ID"] = p.ID
			row["PLAYER_NAME"] = p.Name
			all = append(all, row)
		}
		return len(rows), nil
	})

	if len(all) == 0 {
		f.logger.Warn("No game logs retrieved", "summary", report.Summary())
	} else {
		f.logger.Info("Game log pull complete", "rows", len(all), "summary", report.Summary())
	}
	return all, report
}

// FetchMetadata pulls one info row per player and shapes it into the
// PLAYER_METADATA vocabulary, adding the derived headshot URL.
func (f *Fetcher) FetchMetadata(ctx context.Context, roster []provider.PlayerRef) (provider.Rows, Report) {
	f.logger.Info("Pulling player metadata", "players", len(roster))

	all := provider.Rows{}
	report := f.sweep(ctx, roster, f.opts.MetadataDelay, "metadata", func(p provider.PlayerRef) (int, error) {
		info, err := f.source.PlayerInfo(ctx, p.ID)
		if err != nil {
			return 0, err
		}
		all = append(all, provider.Row{
			"PLAYER_ID":    p.ID,
			"PLAYER_NAME":  p.Name,
			"DOB":          info["BIRTHDATE"],
			"HEIGHT":       info["HEIGHT"],
			"WEIGHT":       info["WEIGHT"],
			"POSITION":     info["POSITION"],
			"DRAFT_YEAR":   info["DRAFT_YEAR"],
			"DRAFT_ROUND":  info["DRAFT_ROUND"],
			"DRAFT_NUMBER": info["DRAFT_NUMBER"],
			"SCHOOL":       info["SCHOOL"],
			"COUNTRY":      info["COUNTRY"],
			"HEADSHOT_URL": HeadshotURL(f.opts.HeadshotTemplate, p.ID),
		})
		return 1, nil
	})

	f.logger.Info("Metadata pull complete", "players", len(all), "summary", report.Summary())
	return all, report
}

// sweep calls pull once per player, paced by delay. Cancellation stops the
// sweep between players.
func (f *Fetcher) sweep(ctx context.Context, roster []provider.PlayerRef, delay time.Duration, what string, pull func(provider.PlayerRef) (int, error)) Report {
	report := Report{Requested: len(roster)}
	pacer := newPacer(delay)

	for i, p := range roster {
		if err := pacer.Wait(ctx); err != nil {
			f.logger.Warn("Sweep interrupted", "kind", what, "processed", i, "error", err)
			report.Interrupted = true
			break
		}

		n, err := pull(p)
		report.Processed++
		if err != nil {
			f.logger.Warn("Unable to pull "+what, "player", p.Name, "player_id", p.ID, "error", err)
			report.Failures = append(report.Failures, Failure{Player: p, Err: err})
			continue
		}
		if n > 0 {
			report.Retrieved++
		}
		report.Rows += n
		f.logger.Info("Player "+what+" retrieved", "player", p.Name, "progress", fmt.Sprintf("%d/%d", i+1, len(roster)))
	}
	return report
}

// newPacer spaces successive calls by delay; the first call is immediate.
func newPacer(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// HeadshotURL fills the template's {player_id} slot.
func HeadshotURL(template string, playerID int64) string {
	if template == "" {
		return ""
	}
	return strings.ReplaceAll(template, "{player_id}", strconv.FormatInt(playerID, 10))
}
