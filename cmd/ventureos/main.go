package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/ventureos/internal/cli"
	"github.com/alexanderramin/ventureos/internal/config"
	"github.com/alexanderramin/ventureos/internal/db"
	"github.com/alexanderramin/ventureos/internal/intelligence"
	"github.com/alexanderramin/ventureos/internal/llm"
	"github.com/alexanderramin/ventureos/internal/repository"
	"github.com/alexanderramin/ventureos/internal/service"
	"github.com/alexanderramin/ventureos/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(bootstrap).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the App from configuration. The TUI owns the terminal,
// so its logs are discarded unless log.file is set.
func bootstrap(cfg config.Config, headless bool) (*cli.App, func() error, error) {
	var fallback io.Writer = io.Discard
	if headless {
		fallback = os.Stderr
	}
	logWriter, closeLog, err := config.OpenLogWriter(cfg.LogFile, fallback)
	if err != nil {
		return nil, nil, err
	}
	logger := config.NewLogger(cfg.LogLevel, logWriter)
	if cfg.Source != "" {
		logger.Debug("config_loaded", "file", cfg.Source)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	obs := service.NewLogUseCaseObserver(logger)
	app := &cli.App{
		Config:    cfg,
		Simulator: session.NewSimulator(nil, cfg.Simulation, session.WithSeed(cfg.Seed)),
		Generator: newGenerator(cfg, logger),
		Auth:      session.SimulatedLogin{Delay: cfg.LoginDelay},
		Archive:   service.NewArchiveService(repository.NewSQLiteVentureRepo(database), obs),
		Export:    service.NewFileExportService(".", obs),
		Logger:    logger,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	closeAll := func() error {
		return errors.Join(database.Close(), closeLog())
	}
	return app, closeAll, nil
}

// newGenerator returns the Ollama-backed service when the LLM is enabled and
// reachable, and the offline generator otherwise.
func newGenerator(cfg config.Config, logger *slog.Logger) session.Generator {
	if !cfg.LLMEnabled {
		return intelligence.NewFallbackVentureService()
	}
	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLMLogCalls {
		observer = llm.NewLogObserver(logger)
	}
	client := llm.NewOllamaClient(cfg.LLM(), observer)
	return intelligence.NewReachableVentureService(context.Background(), client, logger)
}
