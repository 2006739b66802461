package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/whalewatch/polymarket-data/internal/api"
	"github.com/whalewatch/polymarket-data/internal/config"
	"github.com/whalewatch/polymarket-data/internal/database"
	"github.com/whalewatch/polymarket-data/internal/ingest"
	"github.com/whalewatch/polymarket-data/internal/store"
	"github.com/whalewatch/polymarket-data/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (empty = environment variables only)")
	interval := flag.Duration("interval", 0, "re-run interval (0 = run once and exit)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ingestor",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadAndValidate(*configPath)
	} else {
		cfg, err = config.FromEnvAndValidate()
	}
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"fetch_limit", cfg.API.Limit,
		"cost_threshold", cfg.Ingest.CostThreshold,
		"timezone", cfg.Ingest.Timezone,
	)

	loc, err := time.LoadLocation(cfg.Ingest.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create API client
	apiClient := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)

	runner := ingest.NewRunner(
		ingest.Config{
			FetchLimit:    cfg.API.Limit,
			FetchOffset:   cfg.API.Offset,
			CostThreshold: decimal.NewFromFloat(cfg.Ingest.CostThreshold),
			Location:      loc,
		},
		apiClient,
		store.New(pool, logger),
		logger,
	)

	if *interval > 0 {
		logger.Info("running in interval mode", "interval", *interval)
		if err := runner.RunLoop(ctx, *interval); err != nil {
			logger.Error("ingestion loop failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if _, err := runner.Run(ctx); err != nil {
		logger.Error("ingestion failed", "error", err)
		os.Exit(1)
	}
}
