package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(lc fx.Lifecycle, cfg *config.Config) (*Impl, error) {
		withSentry := cfg.App.SentryUrl != ""
		if withSentry {
			err := sentry.Init(sentry.ClientOptions{
				Dsn:         cfg.App.SentryUrl,
				Environment: cfg.App.Env,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to init sentry: %w", err)
			}

			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					sentry.Flush(2 * time.Second)
					return nil
				},
			})
		}

		return New(
			Opts{
				Env:    cfg.App.Env,
				Sentry: withSentry,
			},
		), nil
	},
	fx.As(new(Logger)),
)
