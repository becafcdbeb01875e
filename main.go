package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/config"
	"github.com/qyinm/shoptui/logging"
	"github.com/qyinm/shoptui/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := catalog.New(
		catalog.WithBaseURL(cfg.BaseURL),
		catalog.WithHTTPClient(catalog.NewHTTPClient(cfg.Timeout)),
		catalog.WithRateLimit(cfg.RPS, cfg.Burst),
		catalog.WithLogger(logger.WithPrefix("catalog")),
	)

	logger.Info("shoptui started", "base_url", cfg.BaseURL)
	p := tea.NewProgram(
		ui.NewModel(ctx, source, logger.WithPrefix("ui")),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("shoptui exiting")
	return nil
}
