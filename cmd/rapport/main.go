package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"rapport/internal/app"
	"rapport/internal/assist"
	"rapport/internal/config"
	"rapport/internal/contract"
	"rapport/internal/extract"
	"rapport/internal/rules"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	cfg, err := config.Load(os.Getenv("RP_CONFIG"))
	if err != nil {
		log.Fatal("config error", "err", err)
	}
	logger := newLogger(cfg.Log.Level)
	service := assist.NewService(app.NewCollaborator(cfg), rules.NewEngine(), logger)

	switch cmd {
	case "interpret":
		interpret(service, os.Args[2:])
	case "reply":
		reply(service, os.Args[2:])
	case "doctor":
		doctor(cfg, service)
	default:
		usage()
	}
}

func interpret(service *assist.Service, args []string) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: rapport interpret <text>")
		os.Exit(2)
	}
	result := service.Interpret(context.Background(), text)
	printJSON(map[string]any{
		"sentiment": extract.Sentiment(text),
		"result":    result,
	})
}

func reply(service *assist.Service, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: rapport reply <text> [title] [description] [type]")
		os.Exit(2)
	}
	var rc contract.ReminderContext
	if len(args) > 1 {
		suggested := &contract.SuggestedReminder{Title: args[1]}
		if len(args) > 2 {
			suggested.Description = args[2]
		}
		if len(args) > 3 {
			suggested.Type = args[3]
		}
		rc.SuggestedReminder = suggested
	}
	printJSON(service.ResolveReminderReply(context.Background(), args[0], rc))
}

func doctor(cfg config.Config, service *assist.Service) {
	fmt.Printf("http addr:    %s\n", cfg.HTTP.Addr)
	fmt.Printf("provider:     %s\n", service.Provider())
	fmt.Printf("llm model:    %s\n", orDefault(cfg.LLM.Model, "(provider default)"))
	fmt.Printf("log level:    %s\n", cfg.Log.Level)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal("encode error", "err", err)
	}
	fmt.Println(string(out))
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "rapport"})
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}

func usage() {
	fmt.Println("rapport - natural-language understanding for your people")
	fmt.Println()
	fmt.Println("usage:")
	fmt.Println("  rapport interpret <text>                     classify an utterance")
	fmt.Println("  rapport reply <text> [title] [desc] [type]   resolve a reminder reply")
	fmt.Println("  rapport doctor                               show resolved configuration")
}
