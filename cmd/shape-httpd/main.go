// Command shape-httpd serves static files over HTTP/1.x, or answers the
// hello protocol, from a fixed pool of workers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shapestone/shape-httpd/internal/config"
	"github.com/shapestone/shape-httpd/internal/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg := config.Default()
	fs := flag.NewFlagSet("shape-httpd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}

	logger := setupLogger(cfg, stderr)

	srv := &server.Server{
		Handler:     newHandler(cfg),
		Workers:     cfg.Workers,
		Logger:      logger,
		ReadTimeout: cfg.ReadTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(cfg.Addr()) }()

	select {
	case err := <-errc:
		logger.Error("failed to start server", "addr", cfg.Addr(), "error", err)
		return 1
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Warn("workers did not stop in time", "error", err)
		return 1
	}
	if err := <-errc; err != nil && !errors.Is(err, server.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		return 1
	}
	return 0
}

func newHandler(cfg config.Config) server.ConnHandler {
	if cfg.Protocol == config.ProtocolHello {
		return server.HelloHandler{}
	}
	return server.NewFileServer(cfg.DocumentRoot)
}

func setupLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{
		Level: level,
	}
	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler).With("protocol", cfg.Protocol)
}
