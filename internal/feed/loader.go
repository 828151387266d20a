package feed

import (
	"context"
	"fmt"
	"slices"

	"github.com/orgball2608/media-share-bot/internal/api"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Source produces a feed snapshot, newest first.
type Source interface {
	Load(ctx context.Context, myFilesOnly bool) ([]domain.Media, error)
}

// CurrentUser reports the logged-in user or ErrNotLoggedIn.
type CurrentUser interface {
	RequireUser() (domain.User, error)
}

type LoaderOpts struct {
	fx.In

	Tags    api.TagClient
	Media   api.MediaClient
	Session CurrentUser
	Config  *config.Config
	Logger  logger.Logger
}

type Loader struct {
	tags    api.TagClient
	media   api.MediaClient
	session CurrentUser
	appTag  string
	logger  logger.Logger
}

var _ Source = (*Loader)(nil)

func NewLoader(opts LoaderOpts) *Loader {
	return &Loader{
		tags:    opts.Tags,
		media:   opts.Media,
		session: opts.Session,
		appTag:  opts.Config.MediaAPI.AppTag,
		logger:  opts.Logger.WithComponent("FeedLoader"),
	}
}

// Load lists the files carrying the application tag, newest first, with
// full details. One failed detail fetch fails the whole batch.
func (l *Loader) Load(ctx context.Context, myFilesOnly bool) ([]domain.Media, error) {
	files, err := l.tags.GetFilesByTag(ctx, l.appTag)
	if err != nil {
		return nil, err
	}

	if myFilesOnly {
		user, err := l.session.RequireUser()
		if err != nil {
			return nil, err
		}
		files = lo.Filter(files, func(f domain.TaggedFile, _ int) bool {
			return f.UserID == user.UserID
		})
	}

	// The tag listing is oldest first.
	slices.Reverse(files)

	items := make([]domain.Media, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			m, err := l.media.GetMedia(gctx, f.FileID)
			if err != nil {
				return fmt.Errorf("file %d: %w", f.FileID, err)
			}
			items[i] = *m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.Debug("Feed loaded", "items", len(items), "my_files_only", myFilesOnly)
	return items, nil
}
