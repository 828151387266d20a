package notifierimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/internal/feed"
	"github.com/orgball2608/media-share-bot/internal/notifier"
	"github.com/orgball2608/media-share-bot/internal/ratelimit"
	"github.com/orgball2608/media-share-bot/internal/repositories/seenmedia"
	"github.com/orgball2608/media-share-bot/internal/telegram"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

const (
	sendWorkers    = 3
	checkTimeout   = 5 * time.Minute
	cleanupTimeout = 5 * time.Minute
	limiterIdle    = 24 * time.Hour
	timezone       = "Europe/Helsinki"
)

// Users reports who is logged in.
type Users interface {
	CurrentUser() (domain.User, bool)
}

// URLResolver turns API filenames into fetchable URLs.
type URLResolver interface {
	FileURL(filename string) string
}

type Opts struct {
	fx.In

	Feed     feed.Source
	Session  Users
	SeenRepo seenmedia.Repository
	Telegram telegram.Client
	URLs     URLResolver
	Limiter  ratelimit.Limiter
	Config   *config.Config
	Logger   logger.Logger
}

type NotifierImpl struct {
	Feed     feed.Source
	Session  Users
	SeenRepo seenmedia.Repository
	Telegram telegram.Client
	URLs     URLResolver
	Limiter  ratelimit.Limiter
	Config   *config.Config
	Logger   logger.Logger

	location *time.Location
	now      func() time.Time
}

func New(opts Opts) *NotifierImpl {
	log := opts.Logger.WithComponent("Notifier")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.Local
		log.Warn("Failed to load timezone, using local timezone", "timezone", timezone, "error", err)
	}

	return &NotifierImpl{
		Feed:     opts.Feed,
		Session:  opts.Session,
		SeenRepo: opts.SeenRepo,
		Telegram: opts.Telegram,
		URLs:     opts.URLs,
		Limiter:  opts.Limiter,
		Config:   opts.Config,
		Logger:   log,
		location: loc,
		now:      time.Now,
	}
}

var _ notifier.Client = (*NotifierImpl)(nil)

// Start registers the feed check and the daily cleanup on one scheduler.
func (n *NotifierImpl) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(n.location))
	if err != nil {
		return fmt.Errorf("failed to create notifier scheduler: %w", err)
	}

	interval := n.Config.Notifier.Interval
	n.Logger.Info("Setting up feed check", "interval", interval.String())

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
			defer cancel()

			sent, err := n.Check(checkCtx)
			if err != nil {
				n.Logger.Error("Feed check failed", "notifications", sent, "error", err)
				return
			}
			if sent > 0 {
				n.Logger.Info("Feed check finished", "notifications", sent)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule feed check: %w", err)
	}

	// Every day at 3:00 AM
	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				n.Logger.Info("Context cancelled, skipping cleanup job")
				return
			}

			cleanupCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
			defer cancel()

			if err := n.Cleanup(cleanupCtx); err != nil {
				n.Logger.Error("Cleanup failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		n.Logger.Info("Stopping notifier scheduler")
		if err := scheduler.Shutdown(); err != nil {
			n.Logger.Error("Failed to shut down notifier scheduler", "error", err)
		}
	}()

	return nil
}

func (n *NotifierImpl) Cleanup(ctx context.Context) error {
	n.Logger.Info("Starting cleanup job")

	rowsDeleted, err := n.SeenRepo.CleanupOldRecords(ctx, n.Config.Notifier.Retention)
	if err != nil {
		return fmt.Errorf("failed to clean up seen media: %w", err)
	}
	pruned := n.Limiter.Prune(limiterIdle)

	n.Logger.Info("Cleanup completed", "rows_deleted", rowsDeleted, "limiters_pruned", pruned)
	return nil
}
