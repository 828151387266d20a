package ratelimit

import (
	"sync"
	"time"

	"github.com/orgball2608/media-share-bot/pkg/config"
	"golang.org/x/time/rate"
)

// Limiter throttles commands per chat.
type Limiter interface {
	Allow(chatID int64) bool
	// Prune forgets chats idle for longer than idle and reports how many.
	Prune(idle time.Duration) int
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per chat.
type InMemoryLimiter struct {
	mu      sync.Mutex
	buckets map[int64]*bucket
	r       rate.Limit
	b       int
	now     func() time.Time
}

// NewInMemoryLimiter allows requests per period with the given burst, e.g.
// (1, 2*time.Second, 5) is one command every two seconds, five in a row.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &InMemoryLimiter{
		buckets: make(map[int64]*bucket),
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
		now:     time.Now,
	}
}

func NewFromConfig(cfg *config.Config) Limiter {
	return NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
}

func (l *InMemoryLimiter) Allow(chatID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[chatID]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.r, l.b)}
		l.buckets[chatID] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

func (l *InMemoryLimiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	pruned := 0
	for id, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, id)
			pruned++
		}
	}
	return pruned
}
