package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/neboman11/service-update-bot/internal/charts"
	"github.com/neboman11/service-update-bot/internal/config"
	"github.com/neboman11/service-update-bot/internal/detector"
	"github.com/neboman11/service-update-bot/internal/github"
	"github.com/neboman11/service-update-bot/internal/httpx"
	"github.com/neboman11/service-update-bot/internal/notify"
	"github.com/neboman11/service-update-bot/internal/orchestrator"
	"github.com/neboman11/service-update-bot/internal/reconciler"
	"github.com/neboman11/service-update-bot/internal/registry"
	"github.com/neboman11/service-update-bot/internal/scanner"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx := context.Background()
	httpClient := httpx.NewClient()
	notifier := notify.FromEnv(httpClient)

	cfg, err := config.Load()
	if err != nil {
		fatal(ctx, notifier, fmt.Sprintf("Script terminating. Reason: %v", err))
	}

	ghClient, err := github.New(cfg.GithubPAT, cfg.UpdateRepo)
	if err != nil {
		fatal(ctx, notifier, fmt.Sprintf("Script terminating. Reason: %v", err))
	}

	bot := orchestrator.NewUpdateBot(
		scanner.New(ghClient),
		detector.New(
			charts.NewResolver(httpClient),
			registry.NewResolver(httpClient, cfg.GhcrToken),
			notifier,
		),
		reconciler.New(ghClient, notifier, cfg.DryRun),
	)

	if err := bot.Run(ctx); err != nil {
		fatal(ctx, notifier, fmt.Sprintf("An unexpected error occurred, forcing the script to terminate: %v", err))
	}

	if cfg.DryRun {
		log.Info("Dry run complete. No changes were committed.")
	}
}

// fatal sends a best-effort notification before exiting non-zero.
func fatal(ctx context.Context, notifier notify.Notifier, message string) {
	log.Error(message)
	if err := notifier.Send(ctx, message); err != nil {
		log.WithError(err).Warn("Failed to send final notification")
	}
	os.Exit(1)
}
