package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/config"
	"github.com/qyinm/shoptui/logging"
	"github.com/qyinm/shoptui/mcpsrv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// stdout carries the protocol
	logger := logging.New(os.Stderr, cfg.LogLevel)

	source := catalog.New(
		catalog.WithBaseURL(cfg.BaseURL),
		catalog.WithHTTPClient(catalog.NewHTTPClient(cfg.Timeout)),
		catalog.WithRateLimit(cfg.RPS, cfg.Burst),
		catalog.WithLogger(logger.WithPrefix("catalog")),
	)
	server := mcpsrv.NewServer(source, "dev", &mcpsrv.ServerOptions{
		Logger: logger.WithPrefix("mcp"),
	})

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "stdio mcp server")
	}
	return nil
}
