package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

// cronLogger adapts slog to cron.Logger. Info comes from the embedded logger.
type cronLogger struct {
	*slog.Logger
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.Logger.Error(msg, append(keysAndValues, "error", err)...)
}

func scheduleCmd() *cobra.Command {
	var (
		flags pullFlags
		spec  string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run `pull all` on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts, err := fetchOptions(cmd, cfg, &flags)
			if err != nil {
				return err
			}
			if spec == "" {
				spec = cfg.IngestSchedule
			}
			season := cfg.DefaultSeason
			if flags.season != "" {
				season = flags.season
			}

			cl := cronLogger{logger}
			c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl)))
			_, err = c.AddFunc(spec, func() {
				if err := runOnce(ctx, cfg, opts, flags.players, season, pullAll); err != nil {
					logger.Error("Scheduled run failed", "error", err)
				}
			})
			if err != nil {
				return err
			}

			c.Start()
			logger.Info("Scheduler started", "schedule", spec, "season", season)
			<-ctx.Done()

			// Wait for an in-flight run to notice cancellation.
			<-c.Stop().Done()
			logger.Info("Scheduler stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&spec, "cron", "", "Cron spec (defaults to INGEST_SCHEDULE)")
	cmd.Flags().StringVar(&flags.season, "season", "", `Season ("2024-25") or "ALL" (defaults to DEFAULT_SEASON)`)
	cmd.Flags().Int64SliceVar(&flags.players, "player", nil, "Restrict runs to these player IDs (repeatable)")
	cmd.Flags().DurationVar(&flags.delay, "delay", 0, "Pause between per-player calls")
	return cmd
}
