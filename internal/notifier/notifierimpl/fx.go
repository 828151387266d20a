package notifierimpl

import (
	"github.com/orgball2608/media-share-bot/internal/card"
	"github.com/orgball2608/media-share-bot/internal/notifier"
	"github.com/orgball2608/media-share-bot/internal/session"
	"go.uber.org/fx"
)

var Module = fx.Module("notifier",
	fx.Provide(
		func(s *session.Session) Users { return s },
		func(c *card.Service) URLResolver { return c },
		fx.Annotate(New, fx.As(new(notifier.Client))),
	),
)
