package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/fight-predictor/internal/api"
	"github.com/yourusername/fight-predictor/internal/health"
	"github.com/yourusername/fight-predictor/internal/metrics"
	"github.com/yourusername/fight-predictor/internal/scheduler"
)

var roundDelay time.Duration

func init() {
	serveCmd.Flags().DurationVar(&roundDelay, "round-delay", time.Second, "Pause between rounds of the websocket simulation stream")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"storage":     repos.Driver,
		"odds":        oddsSvc != nil,
		"version":     Version,
	}).Info("Fight predictor starting")

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Port:        cfg.Health.Port,
		Logger:      appLog,
	})
	healthServer.AddCheck("storage", repos.Ping)
	healthServer.AddCheck("roster", func(context.Context) error {
		if live.Len() == 0 {
			return errors.New("roster is empty")
		}
		return nil
	})
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}

	if err := ensureRoster(ctx); err != nil {
		return err
	}

	sched := scheduler.NewScheduler(appLog)
	if cfg.Roster.RefreshCron != "" {
		if err := sched.ScheduleRosterRefresh(cfg.Roster.RefreshCron, ingestion, predictions.ClearCache); err != nil {
			return err
		}
	}
	if oddsSvc != nil && oddsSvc.Enabled() && cfg.Odds.RefreshCron != "" {
		if err := sched.ScheduleOddsRefresh(cfg.Odds.RefreshCron, oddsSvc); err != nil {
			return err
		}
	}

	opts := api.OptionsFromConfig(cfg.Server)
	opts.RoundDelay = roundDelay
	apiServer := api.NewServer(api.Dependencies{
		Predictions: predictions,
		FightCard:   fightCard,
		Odds:        oddsSvc,
	}, opts, appLog)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 3)
	running := 1
	go func() { errCh <- apiServer.Run(ctx) }()
	if sched.JobCount() > 0 {
		running++
		go func() { errCh <- sched.Run(ctx) }()
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Port != cfg.Server.Port {
		running++
		go func() { errCh <- runMetricsServer(ctx) }()
	}

	healthServer.SetReady(true)

	// the first component to stop takes the others down with it
	var firstErr error
	for i := 0; i < running; i++ {
		err := <-errCh
		if i == 0 {
			healthServer.SetReady(false)
			appLog.Info("Fight predictor shutting down")
			cancel()
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func runMetricsServer(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
