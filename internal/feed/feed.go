package feed

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
)

// ErrSuperseded is returned by a refresh that a newer refresh replaced.
var ErrSuperseded = errors.New("refresh superseded")

// Signaller hands out update subscriptions.
type Signaller interface {
	Subscribe() (<-chan struct{}, func())
}

// Feed caches one feed listing. Only the most recently issued refresh may
// store its result; starting a refresh cancels the one in flight.
// A my-files listing is bound to the user it was loaded for.
type Feed struct {
	name        string
	source      Source
	myFilesOnly bool
	users       CurrentUser
	logger      logger.Logger

	mu        sync.Mutex
	items     []domain.Media
	loaded    bool
	loadedFor int
	updatedAt time.Time
	seq       uint64
	cancel    context.CancelFunc
}

// New creates a feed. users is consulted only when myFilesOnly is set.
func New(name string, source Source, myFilesOnly bool, users CurrentUser, log logger.Logger) *Feed {
	return &Feed{
		name:        name,
		source:      source,
		myFilesOnly: myFilesOnly,
		users:       users,
		logger:      log.WithComponent("Feed").With("feed", name),
	}
}

func (f *Feed) Name() string {
	return f.name
}

// owner returns the user a my-files listing belongs to, 0 for the home feed.
func (f *Feed) owner() (int, error) {
	if !f.myFilesOnly {
		return 0, nil
	}
	user, err := f.users.RequireUser()
	if err != nil {
		return 0, err
	}
	return user.UserID, nil
}

// Refresh reloads the listing. On failure the previous listing is kept.
// A my-files load that finishes after the user changed is discarded, and
// with nobody logged in the my-files listing is dropped.
func (f *Feed) Refresh(ctx context.Context) ([]domain.Media, error) {
	owner, err := f.owner()
	if err != nil {
		f.mu.Lock()
		f.items, f.loaded, f.loadedFor = nil, false, 0
		f.mu.Unlock()
		return nil, err
	}

	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	rctx, cancel := context.WithCancel(ctx)
	f.seq++
	seq := f.seq
	f.cancel = cancel
	f.mu.Unlock()
	defer cancel()

	items, err := f.source.Load(rctx, f.myFilesOnly)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		return nil, ErrSuperseded
	}
	f.cancel = nil
	if err != nil {
		return nil, err
	}
	if now, err := f.owner(); err != nil || now != owner {
		return nil, ErrSuperseded
	}

	f.items = items
	f.loaded = true
	f.loadedFor = owner
	f.updatedAt = time.Now()
	return slices.Clone(items), nil
}

// Items returns the cached listing and whether any refresh has succeeded.
func (f *Feed) Items() ([]domain.Media, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items), f.loaded
}

// Get returns the cached listing, loading it first if nothing is cached or
// the cached my-files listing belongs to another user.
func (f *Feed) Get(ctx context.Context) ([]domain.Media, error) {
	owner, err := f.owner()
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	fresh := f.loaded && f.loadedFor == owner
	items := slices.Clone(f.items)
	f.mu.Unlock()

	if fresh {
		return items, nil
	}
	return f.Refresh(ctx)
}

func (f *Feed) UpdatedAt() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updatedAt
}

// Watch refreshes once and then on every update signal until ctx is done.
func (f *Feed) Watch(ctx context.Context, signals Signaller) {
	ch, unsubscribe := signals.Subscribe()
	defer unsubscribe()

	f.refreshLogged(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			f.refreshLogged(ctx)
		}
	}
}

func (f *Feed) refreshLogged(ctx context.Context) {
	items, err := f.Refresh(ctx)
	switch {
	case err == nil:
		f.logger.Debug("Feed refreshed", "items", len(items))
	case errors.Is(err, ErrSuperseded), errors.Is(err, context.Canceled):
	case apperrors.IsNotLoggedIn(err):
		f.logger.Debug("Feed needs a logged-in user, skipping refresh")
	default:
		f.logger.Error("Feed refresh failed", "error", err)
	}
}

// Feeds are the two listings the bot shows.
type Feeds struct {
	Home *Feed
	Mine *Feed
}

func NewFeeds(source Source, users CurrentUser, log logger.Logger) *Feeds {
	return &Feeds{
		Home: New("home", source, false, users, log),
		Mine: New("mine", source, true, users, log),
	}
}

// Watch runs both watchers until ctx is done.
func (fs *Feeds) Watch(ctx context.Context, signals Signaller) {
	var wg sync.WaitGroup
	for _, f := range []*Feed{fs.Home, fs.Mine} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Watch(ctx, signals)
		}()
	}
	wg.Wait()
}
