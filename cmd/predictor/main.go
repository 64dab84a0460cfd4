// Package main provides the fight predictor command line.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/fight-predictor/internal/cache"
	"github.com/yourusername/fight-predictor/internal/config"
	"github.com/yourusername/fight-predictor/internal/datasource"
	"github.com/yourusername/fight-predictor/internal/logger"
	"github.com/yourusername/fight-predictor/internal/metrics"
	"github.com/yourusername/fight-predictor/internal/odds"
	"github.com/yourusername/fight-predictor/internal/repository"
	"github.com/yourusername/fight-predictor/internal/roster"
	"github.com/yourusername/fight-predictor/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	logLevel   string
	jsonOutput bool

	appLog      *logrus.Logger
	cfg         *config.Config
	repos       *repository.Repositories
	live        *roster.Roster
	oddsSvc     *odds.Service
	predictions *service.PredictionService
	fightCard   *service.FightCardService
	ingestion   *service.IngestionService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(predictCmd, simulateCmd, oddsCmd, cardCmd, ingestCmd, serveCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:           "predictor",
	Short:         "Predict and simulate MMA fights",
	Long:          `Scores two fighters from their career statistics, simulates the fight round by round, and compares the result with the betting market.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == versionCmd {
			return nil
		}
		if err := loadConfig(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repos == nil {
			return nil
		}
		return repos.Close()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("predictor %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig(ctx context.Context) error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.App.LogLevel = logLevel
	}

	if err := config.LoadSecretsFromAWS(ctx, cfg); err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	// logs go to stderr so results on stdout stay pipeable
	appLog = logger.NewLoggerWithOutput(cfg.App.LogLevel, os.Stderr)
	metrics.InitRegistry()

	var err error
	repos, err = repository.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	source, err := datasource.NewFighterSource(cfg.Roster, nil, appLog)
	if err != nil {
		return err
	}

	live = roster.New(nil)
	ingestion = service.NewIngestionService(source, repos.Fighters, live, appLog)
	oddsSvc = newOddsService()

	var predictionCache *cache.PredictionCache
	if ttl := cfg.PredictionCacheTTL(); ttl > 0 {
		predictionCache = cache.NewPredictionCache(ttl, cfg.Prediction.CacheMaxSize)
		predictionCache.OnStats = metrics.UpdatePredictionCacheHitRatio
	}

	predictions = service.NewPredictionService(live, service.PredictionServiceConfig{
		Cache:         predictionCache,
		Odds:          oddsSvc,
		DefaultRounds: cfg.Prediction.DefaultRounds,
	}, appLog)
	fightCard = service.NewFightCardService(repos.FightCard, predictions, appLog)

	return nil
}

// newOddsService returns nil when the feed is switched off.
func newOddsService() *odds.Service {
	if !cfg.Odds.Enabled {
		return nil
	}

	httpCfg := datasource.DefaultHTTPClientConfig()
	if cfg.Odds.TimeoutSeconds > 0 {
		httpCfg.Timeout = time.Duration(cfg.Odds.TimeoutSeconds) * time.Second
	}
	if cfg.Odds.RateLimit > 0 {
		httpCfg.RateLimit = cfg.Odds.RateLimit
	}
	httpCfg.MaxRetries = cfg.Odds.MaxRetries

	client := odds.NewClient(datasource.NewRateLimitedHTTPClient(httpCfg, appLog), cfg.Odds.BaseURL, cfg.Odds.APIKey)
	ttl := cfg.OddsCacheTTL()
	if ttl <= 0 {
		ttl = odds.DefaultCacheTTL
	}
	return odds.NewService(client, odds.NewCache(ttl, nil), appLog)
}

// ensureRoster fills the in-memory roster from the store, ingesting from the configured
// source when the store is empty.
func ensureRoster(ctx context.Context) error {
	if live.Len() > 0 {
		return nil
	}

	count, err := repos.Fighters.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stored fighters: %w", err)
	}
	if count > 0 {
		loaded, err := live.Load(ctx, repos.Fighters)
		if err != nil {
			return fmt.Errorf("failed to load stored roster: %w", err)
		}
		metrics.UpdateRosterSize(loaded)
		appLog.WithField("fighters", loaded).Debug("Roster loaded from storage")
		return nil
	}

	stats, err := ingestion.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("failed to ingest roster: %w", err)
	}
	appLog.Info(stats.String())
	return nil
}
