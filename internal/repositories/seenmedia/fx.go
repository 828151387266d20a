package seenmedia

import (
	"go.uber.org/fx"
)

var Module = fx.Module("seen_media_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
