package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgball2608/media-share-bot/internal/app"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	bot := fx.New(
		fx.Logger(log),
		app.Module,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), bot.StartTimeout())
	defer cancel()
	if err := bot.Start(startCtx); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	log.Info("Shutting down")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), bot.StopTimeout())
	defer cancelStop()
	if err := bot.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
