package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jasonsolar777/ai-receptionist/internal/config"
	"github.com/jasonsolar777/ai-receptionist/internal/httpapi"
	"github.com/jasonsolar777/ai-receptionist/internal/notify"
	"github.com/jasonsolar777/ai-receptionist/internal/provider"
	"github.com/jasonsolar777/ai-receptionist/internal/runner"
	"github.com/jasonsolar777/ai-receptionist/memory"
)

func main() {
	// Best effort; the env may already be populated by the platform.
	_ = godotenv.Load()

	cfg := config.FromEnv()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// The messaging credentials are the only hard requirement, and only
	// once a booking link is configured. A missing completion credential
	// just means every reply degrades to the scripted fallback.
	var messenger notify.Messenger
	if cfg.BookingLink != "" {
		if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
			log.Fatal("BOOKING_LINK is set but TWILIO_ACCOUNT_SID/TWILIO_AUTH_TOKEN are missing")
		}
		messenger = notify.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	}

	store := memory.NewStore(cfg.SessionTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go store.Janitor(ctx, time.Minute)

	run := runner.New(runner.Params{
		Store:        store,
		Completer:    newCompleter(cfg),
		Messenger:    messenger,
		Log:          log,
		SystemPrompt: runner.SystemPrompt(cfg.PromptName()),
		OfficeName:   cfg.OfficeName(),
		BookingLink:  cfg.BookingLink,
		GatherPath:   httpapi.GatherPath,
	})

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: httpapi.NewRouter(&httpapi.Handler{
			Store:      store,
			Runner:     run,
			Log:        log,
			OfficeName: cfg.OfficeName(),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM.
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigch
		cancel()
		shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shCancel()
		_ = srv.Shutdown(shCtx)
	}()

	log.Info("ai receptionist listening",
		zap.String("addr", srv.Addr),
		zap.String("provider", cfg.CompletionProvider()))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}

func newCompleter(cfg config.Config) provider.Completer {
	if cfg.CompletionProvider() == config.ProviderAnthropic {
		return provider.NewAnthropic(cfg.Model)
	}
	return provider.NewOpenAI(cfg.OpenAIKey, cfg.Model)
}
