package commandimpl

import (
	"time"

	"github.com/orgball2608/media-share-bot/internal/account"
	"github.com/orgball2608/media-share-bot/internal/card"
	"github.com/orgball2608/media-share-bot/internal/command"
	"github.com/orgball2608/media-share-bot/internal/feed"
	"github.com/orgball2608/media-share-bot/internal/ratelimit"
	"github.com/orgball2608/media-share-bot/internal/session"
	"github.com/orgball2608/media-share-bot/internal/telegram"
	"github.com/orgball2608/media-share-bot/internal/upload"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

const (
	timezone       = "Europe/Helsinki"
	requestTimeout = 2 * time.Minute
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Session  *session.Session
	Feeds    *feed.Feeds
	Cards    *card.Service
	Uploads  *upload.Service
	Accounts *account.Service
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Telegram telegram.Client
	Session  *session.Session
	Feeds    *feed.Feeds
	Cards    *card.Service
	Uploads  *upload.Service
	Accounts *account.Service
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
	Config   *config.Config

	location *time.Location
}

func New(opts Opts) *CommandImpl {
	log := opts.Logger.WithComponent("Command")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.Local
		log.Warn("Failed to load timezone, using local timezone", "timezone", timezone, "error", err)
	}

	return &CommandImpl{
		Telegram: opts.Telegram,
		Session:  opts.Session,
		Feeds:    opts.Feeds,
		Cards:    opts.Cards,
		Uploads:  opts.Uploads,
		Accounts: opts.Accounts,
		Limiter:  opts.Limiter,
		Logger:   log,
		Config:   opts.Config,
		location: loc,
	}
}

var _ command.Client = (*CommandImpl)(nil)

var Module = fx.Module("command",
	fx.Provide(
		fx.Annotate(New, fx.As(new(command.Client))),
	),
)
