package session

import (
	"github.com/orgball2608/media-share-bot/internal/api"
	"go.uber.org/fx"
)

var Module = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			NewTokenStore,
			fx.As(fx.Self()),
			fx.As(new(api.TokenProvider)),
		),
		New,
	),
)
