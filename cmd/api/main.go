// Package main starts an HTTP server that derives curriculum traceability
// (trace rows, standard coverage and flow-diagram graphs) from posted
// programme snapshots. Award standards are loaded once at startup.
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

	"github.com/programmedesign/core/cmd/api/middleware"
	"github.com/programmedesign/core/internal/config"
	"github.com/programmedesign/core/internal/handlers"
	"github.com/programmedesign/core/internal/logger"
	"github.com/programmedesign/core/internal/parser"
)

func newRouter(api *handlers.API, cfg *config.Config, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()
	api.Register(mux)
	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.AccessLog(log),
		middleware.Cors(cfg.AllowedOrigin),
	)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() {
		if err := log.Sync(); err != nil {
			fmt.Fprintln(os.Stderr, "flush logs:", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	standards, err := parser.LoadStandards(ctx, cfg.StandardsPath)
	if err != nil {
		log.Fatal("loading standards", "path", cfg.StandardsPath, "error", err)
	}
	if len(standards) == 0 {
		log.Warn("no award standards loaded, coverage will report zero indicators")
	}

	api := handlers.New(standards, log, cfg.CacheSize)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(api, cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("server starting", "addr", srv.Addr, "standards", len(standards), "cache_size", cfg.CacheSize)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", "error", err)
	}
}
