package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-faster/errors"
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

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mcpHandler := mcpsrv.NewHandler(server, mcpsrv.StreamableOptions(cfg.MCP))
	mux.Handle("/mcp", mcpsrv.WrapMCPHandler(mcpHandler, cfg.MCP))

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.MCP.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	logger.Info("shoptui-mcp listening", "addr", httpServer.Addr, "base_url", cfg.BaseURL)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}
