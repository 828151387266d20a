package notifierimpl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/orgball2608/media-share-bot/internal/api"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/internal/repositories/seenmedia"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/formatter"
	"github.com/orgball2608/media-share-bot/pkg/retry"
	"github.com/panjf2000/ants/v2"
)

func (n *NotifierImpl) Check(ctx context.Context) (int, error) {
	user, ok := n.Session.CurrentUser()
	if !ok {
		n.Logger.Debug("Not logged in, skipping feed check")
		return 0, nil
	}

	items, err := retry.DoValue(ctx, n.Logger, "loadFeed", func() ([]domain.Media, error) {
		items, err := n.Feed.Load(ctx, false)
		if err != nil && !isTransient(err) {
			return nil, retry.Permanent(err)
		}
		return items, err
	}, retry.DefaultConfig())
	if err != nil {
		return 0, fmt.Errorf("failed to load feed: %w", err)
	}

	seen, err := n.SeenRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count seen media: %w", err)
	}
	baseline := seen == 0

	now := n.now()
	// Items older than the retention may have been cleaned up already.
	cutoff := now.Add(-n.Config.Notifier.Retention)

	// An item is recorded as seen only once it needs no notification or its
	// notification went out; anything else is retried on the next check.
	var (
		fresh []domain.Media
		errs  []error
	)
	for _, m := range items {
		exists, err := n.SeenRepo.Exists(ctx, m.FileID)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to look up file %d: %w", m.FileID, err))
			continue
		}
		if exists {
			continue
		}

		if baseline || m.UserID == user.UserID || m.TimeAdded.Before(cutoff) {
			if err := n.record(ctx, m, now); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		fresh = append(fresh, m)
	}

	if baseline {
		n.Logger.Info("Recorded feed baseline", "items", len(items))
		return 0, errors.Join(errs...)
	}

	sent, sendErrs := n.sendWithAnts(ctx, fresh, now)
	return sent, errors.Join(append(errs, sendErrs...)...)
}

func (n *NotifierImpl) record(ctx context.Context, m domain.Media, now time.Time) error {
	err := n.SeenRepo.Create(ctx, domain.SeenMedia{
		FileID:    m.FileID,
		UserID:    m.UserID,
		Title:     m.Title,
		CreatedAt: now,
	})
	if err != nil && !errors.Is(err, seenmedia.ErrAlreadyExists) {
		return fmt.Errorf("failed to record file %d: %w", m.FileID, err)
	}
	return nil
}

// sendWithAnts notifies about every item and records the delivered ones.
// It returns how many went out and the per-item failures.
func (n *NotifierImpl) sendWithAnts(ctx context.Context, items []domain.Media, now time.Time) (int, []error) {
	if len(items) == 0 {
		return 0, nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sent int
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	pool, err := ants.NewPool(sendWorkers, ants.WithPreAlloc(true))
	if err != nil {
		return 0, []error{fmt.Errorf("failed to create send pool: %w", err)}
	}
	defer pool.Release()

	for _, m := range items {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				n.Logger.Info("Skipping notification due to context cancellation", "file_id", m.FileID)
				return
			default:
			}

			if err := n.notify(m); err != nil {
				fail(fmt.Errorf("failed to notify about file %d: %w", m.FileID, err))
				return
			}
			mu.Lock()
			sent++
			mu.Unlock()

			if err := n.record(ctx, m, now); err != nil {
				fail(err)
			}
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("failed to submit file %d to ants pool: %w", m.FileID, err))
		}
	}

	wg.Wait()
	return sent, errs
}

func (n *NotifierImpl) notify(m domain.Media) error {
	caption := n.caption(m)

	url := n.URLs.FileURL(m.Preview())
	if url != "" {
		err := n.Telegram.SendPhotoToOwnerByURL(url, caption)
		if err == nil {
			return nil
		}
		n.Logger.Warn("Photo notification failed, sending text", "file_id", m.FileID, "error", err)
	}
	return n.Telegram.SendMessageToOwner(caption)
}

func (n *NotifierImpl) caption(m domain.Media) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New upload: %s\n", m.Title)
	if m.Description != "" {
		b.WriteString(formatter.Truncate(m.Description, 300))
		b.WriteString("\n")
	}
	if added := formatter.FormatTime(m.TimeAdded, n.location); added != "" {
		fmt.Fprintf(&b, "Added %s\n", added)
	}
	fmt.Fprintf(&b, "/show %d", m.FileID)
	return b.String()
}

// isTransient reports whether a feed failure may go away on its own.
func isTransient(err error) bool {
	if apperrors.IsNotLoggedIn(err) {
		return false
	}
	status := api.StatusCode(err)
	return status == 0 || status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}
