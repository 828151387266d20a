package app

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/media-share-bot/internal/account"
	"github.com/orgball2608/media-share-bot/internal/api/apiimpl"
	"github.com/orgball2608/media-share-bot/internal/card"
	"github.com/orgball2608/media-share-bot/internal/command"
	"github.com/orgball2608/media-share-bot/internal/command/commandimpl"
	"github.com/orgball2608/media-share-bot/internal/feed"
	"github.com/orgball2608/media-share-bot/internal/migrations"
	"github.com/orgball2608/media-share-bot/internal/notifier"
	"github.com/orgball2608/media-share-bot/internal/notifier/notifierimpl"
	"github.com/orgball2608/media-share-bot/internal/ratelimit"
	repositories "github.com/orgball2608/media-share-bot/internal/repositories/fx"
	"github.com/orgball2608/media-share-bot/internal/session"
	"github.com/orgball2608/media-share-bot/internal/telegram"
	"github.com/orgball2608/media-share-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/media-share-bot/internal/upload"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"github.com/orgball2608/media-share-bot/pkg/pgx"
	"go.uber.org/fx"
)

const commandRestartDelay = 5 * time.Second

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	repositories.Module,
	session.Module,
	apiimpl.Module,
	feed.Module,
	card.Module,
	upload.Module,
	account.Module,
	ratelimit.Module,
	telegramimpl.Module,
	commandimpl.Module,
	notifierimpl.Module,
	fx.Invoke(
		func(cfg *config.Config, log logger.Logger) error {
			if err := migrations.Up(context.Background(), cfg.GetDSN()); err != nil {
				return err
			}
			log.Info("Database migrations applied")
			return nil
		}),
	fx.Invoke(run),
)

type runOpts struct {
	fx.In

	LC       fx.Lifecycle
	Logger   logger.Logger
	Config   *config.Config
	Session  *session.Session
	Feeds    *feed.Feeds
	Telegram telegram.Client
	Command  command.Client
	Notifier notifier.Client
}

func run(opts runOpts) {
	log := opts.Logger
	ctx, cancel := context.WithCancel(context.Background())
	server := newHTTPServer(opts.Config, log, opts.Session, opts.Feeds)

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(server, log)

			restored, err := opts.Session.Restore(ctx)
			if err != nil {
				log.Error("Session restore error", "Error", err)
				notifyOwner(opts.Telegram, log, "Session restore error: "+err.Error())
			} else if !restored {
				log.Info("No valid session, waiting for /login")
			}

			go opts.Feeds.Watch(ctx, opts.Session)

			if err := opts.Notifier.Start(ctx); err != nil {
				log.Error("Notifier start error", "Error", err)
				notifyOwner(opts.Telegram, log, "Notifier start error: "+err.Error())
			}

			go func() {
				for {
					err := opts.Command.HandleCommand(ctx)
					if ctx.Err() != nil {
						return
					}
					log.Error("Command error", "Error", err)

					select {
					case <-ctx.Done():
						return
					case <-time.After(commandRestartDelay):
					}
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			if err := server.Shutdown(stopCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	})
}

func notifyOwner(tg telegram.Client, log logger.Logger, text string) {
	if err := tg.SendMessageToOwner(text); err != nil {
		log.Warn("Failed to notify owner", "error", err)
	}
}
