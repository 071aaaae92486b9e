package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"streamquery/internal/config"
	"streamquery/internal/exercise"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("source", cfg.Source.Driver).Msg("starting streamquery exercises")

	// Stop between exercises on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", cfg.Source.Driver, err)
	}
	defer closeSource()

	ex := exercise.New(repos, logger)
	for _, e := range ex.Catalog() {
		start := time.Now()
		result, err := e.Run(ctx)
		if err != nil {
			return fmt.Errorf("exercise %s failed: %w", e.Name, err)
		}

		logger.Info().
			Str("exercise", e.Name).
			Str("description", e.Description).
			Interface("result", result).
			Dur("duration", time.Since(start)).
			Msg("exercise completed")
	}

	logger.Info().
		Str("session_id", ex.SessionID().String()).
		Int("exercises", len(ex.Catalog())).
		Msg("all exercises completed")

	return nil
}
