package apiimpl

import (
	"github.com/orgball2608/media-share-bot/internal/api"
	"go.uber.org/fx"
)

var Module = fx.Module("media_api",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(
				new(api.AuthClient),
				new(api.UserClient),
				new(api.MediaClient),
				new(api.TagClient),
				new(api.FavouriteClient),
				new(api.CommentClient),
			),
		),
	),
)
