// FILE: reqtap/src/cmd/reqtap/serve.go
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"reqtap/src/internal/config"
	"reqtap/src/internal/middleware"
	"reqtap/src/internal/sink"
	"reqtap/src/internal/version"

	"github.com/valyala/fasthttp"
)

// serve runs the demo echo server with the access-log middleware in front
// of every request.
func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := initializeLogger(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer shutdownLogger()

	console, err := sink.NewConsole(resolveTarget(cfg.AccessLog.Target))
	if err != nil {
		return err
	}

	accessLog, err := middleware.New(cfg.AccessLog, console, logger)
	if err != nil {
		return err
	}

	server := &fasthttp.Server{
		Handler:     accessLog.Wrap(echoHandler),
		Name:        "reqtap",
		ReadTimeout: 30 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	logger.Info("msg", "reqtap starting",
		"version", version.Short(),
		"addr", addr,
		"format", cfg.AccessLog.Format)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ListenAndServe(addr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-sigCtx.Done():
	}

	logger.Info("msg", "Shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("msg", "Server shutdown error", "error", err)
	}
	return nil
}

// echoHandler answers every request with a small plain-text summary.
func echoHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain; charset=utf-8")
	fmt.Fprintf(ctx, "%s %s\n", ctx.Method(), ctx.RequestURI())
}
