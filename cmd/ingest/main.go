// Command ingest is the hoopstats ETL CLI. It pulls active-player game logs
// and metadata from stats.nba.com and upserts them into the store.
//
// Usage:
//
//	hoopstats-ingest schema
//	hoopstats-ingest pull metadata
//	hoopstats-ingest pull gamelogs --season 2024-25 --player 2544
//	hoopstats-ingest pull all --delay 5s
//	hoopstats-ingest schedule --cron "0 9 * * *"
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/hoopstats-data/internal/config"
	"github.com/albapepper/hoopstats-data/internal/db"
	"github.com/albapepper/hoopstats-data/internal/fetch"
	"github.com/albapepper/hoopstats-data/internal/provider"
	"github.com/albapepper/hoopstats-data/internal/provider/nbastats"
	"github.com/albapepper/hoopstats-data/internal/seed"
)

var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "hoopstats-ingest",
		Short:        "NBA player game log and metadata ingestion",
		SilenceUsage: true,
	}

	root.AddCommand(pullCmd())
	root.AddCommand(schemaCmd())
	root.AddCommand(scheduleCmd())

	if err := root.Execute(); err != nil {
		logger.Error("ingest failed", "error", err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// pull command
// --------------------------------------------------------------------------

// pullFlags are shared by every pull subcommand.
type pullFlags struct {
	players []int64
	season  string
	delay   time.Duration
}

func pullCmd() *cobra.Command {
	var flags pullFlags
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull data from stats.nba.com into the store",
	}
	cmd.PersistentFlags().Int64SliceVar(&flags.players, "player", nil, "Restrict the run to these player IDs (repeatable)")
	cmd.PersistentFlags().DurationVar(&flags.delay, "delay", 0, "Pause between per-player calls (defaults to GAMELOG_DELAY / METADATA_DELAY)")

	cmd.AddCommand(pullGameLogsCmd(&flags))
	cmd.AddCommand(pullMetadataCmd(&flags))
	cmd.AddCommand(pullAllCmd(&flags))
	return cmd
}

func pullGameLogsCmd(flags *pullFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamelogs",
		Short: "Pull and upsert game logs for every active player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd, flags, func(ctx context.Context, p *seed.Pipeline, roster []provider.PlayerRef, season string) error {
				return report(p.RunGameLogs(ctx, roster, season))
			})
		},
	}
	cmd.Flags().StringVar(&flags.season, "season", "", `Season ("2024-25") or "ALL" (defaults to DEFAULT_SEASON)`)
	return cmd
}

func pullMetadataCmd(flags *pullFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Pull and upsert metadata for every active player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd, flags, func(ctx context.Context, p *seed.Pipeline, roster []provider.PlayerRef, _ string) error {
				return report(p.RunMetadata(ctx, roster))
			})
		},
	}
}

func pullAllCmd(flags *pullFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Pull metadata, then game logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd, flags, pullAll)
		},
	}
	cmd.Flags().StringVar(&flags.season, "season", "", `Season ("2024-25") or "ALL" (defaults to DEFAULT_SEASON)`)
	return cmd
}

type pullFunc func(ctx context.Context, p *seed.Pipeline, roster []provider.PlayerRef, season string) error

// runPull wires config, client, fetcher and upserter, resolves the roster,
// and hands off to fn.
func runPull(cmd *cobra.Command, flags *pullFlags, fn pullFunc) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := fetchOptions(cmd, cfg, flags)
	if err != nil {
		return err
	}
	season := cfg.DefaultSeason
	if flags.season != "" {
		season = flags.season
	}

	err = runOnce(ctx, cfg, opts, flags.players, season, fn)
	if err == nil && errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("interrupted")
	}
	return err
}

// runOnce builds a fresh pipeline, loads the roster and runs fn.
func runOnce(ctx context.Context, cfg *config.Config, opts fetch.Options, players []int64, season string, fn pullFunc) error {
	client := nbastats.NewClient(cfg.StatsBaseURL, cfg.StatsTimeout, logger)
	fetcher := fetch.New(client, opts, logger)
	pipeline := seed.NewPipeline(fetcher, seed.NewUpserter(db.Connector(cfg), logger), logger)

	roster, err := fetcher.Roster(ctx, players)
	if err != nil {
		return fmt.Errorf("load active players: %w", err)
	}
	logger.Info("Roster loaded", "players", len(roster), "season", season)

	start := time.Now()
	err = fn(ctx, pipeline, roster, season)
	logger.Info("Run finished", "duration", time.Since(start).Round(time.Second))
	return err
}

// pullAll stores metadata, then game logs.
func pullAll(ctx context.Context, p *seed.Pipeline, roster []provider.PlayerRef, season string) error {
	if err := report(p.RunMetadata(ctx, roster)); err != nil {
		return err
	}
	return report(p.RunGameLogs(ctx, roster, season))
}

func fetchOptions(cmd *cobra.Command, cfg *config.Config, flags *pullFlags) (fetch.Options, error) {
	opts := fetch.Options{
		GameLogDelay:     cfg.GameLogDelay,
		MetadataDelay:    cfg.MetadataDelay,
		HeadshotTemplate: cfg.HeadshotTemplate,
	}
	if cmd.Flags().Changed("delay") {
		if flags.delay < 0 {
			return fetch.Options{}, fmt.Errorf("--delay must not be negative")
		}
		opts.GameLogDelay = flags.delay
		opts.MetadataDelay = flags.delay
	}
	return opts, nil
}

// report logs a pipeline result. Per-player fetch errors are logged but do
// not fail the command; store errors do.
func report(result seed.Result, err error) error {
	for _, e := range result.Errors {
		logger.Warn("run error", "kind", result.Kind, "error", e)
	}
	logger.Info("Pipeline finished", "summary", result.Summary())
	return err
}

// --------------------------------------------------------------------------
// schema command
// --------------------------------------------------------------------------

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the base tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			conn, err := db.Connector(cfg)(ctx)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer conn.Close()

			if err := conn.EnsureSchema(ctx); err != nil {
				return err
			}
			logger.Info("Schema ready", "driver", cfg.DBDriver,
				"tables", []string{config.MetadataTable, config.GameLogsTable})
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Debug {
		logLevel.Set(slog.LevelDebug)
	}
	return cfg, nil
}
