package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"rapport/internal/app"
	"rapport/internal/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("RP_CONFIG"))
	if err != nil {
		log.Fatal("config error", "err", err)
	}
	logger := newLogger(cfg.Log.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New(cfg, logger)
	logger.Info("rapportd serving", "addr", cfg.HTTP.Addr, "provider", application.Assist.Provider())
	if err := application.Serve(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rapportd",
	})
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}
