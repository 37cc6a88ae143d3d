// Package app wires configuration, logging and the assist service into the
// HTTP daemon. The endpoints are thin JSON shells over the two entry
// points; no state lives here.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"rapport/internal/assist"
	"rapport/internal/config"
	"rapport/internal/llm"
	"rapport/internal/rules"
)

type App struct {
	Config config.Config
	Logger *log.Logger
	Assist *assist.Service
}

func New(cfg config.Config, logger *log.Logger) *App {
	service := assist.NewService(NewCollaborator(cfg), rules.NewEngine(), logger)
	return &App{Config: cfg, Logger: logger, Assist: service}
}

// NewCollaborator builds the configured language-model provider, or nil for
// a rules-only setup. An openai provider without an API key silently
// degrades to rules-only rather than failing at startup; the fallback is
// the whole point of the engine.
func NewCollaborator(cfg config.Config) llm.Provider {
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.LLM.OpenAIKey != "" {
			return llm.NewOpenAI(cfg.LLM.OpenAIKey, cfg.LLM.BaseURL, cfg.LLM.Model)
		}
	}
	return nil
}

func (a *App) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/interpret", a.handleInterpret)
	mux.HandleFunc("/v1/reminder-reply", a.handleReminderReply)

	srv := &http.Server{
		Addr:              a.Config.HTTP.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}
