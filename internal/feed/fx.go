package feed

import (
	"github.com/orgball2608/media-share-bot/internal/session"
	"go.uber.org/fx"
)

var Module = fx.Module("feed",
	fx.Provide(
		func(s *session.Session) CurrentUser { return s },
		fx.Annotate(NewLoader, fx.As(new(Source))),
		NewFeeds,
	),
)
