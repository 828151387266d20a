package token

import (
	"go.uber.org/fx"
)

var Module = fx.Module("token_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
