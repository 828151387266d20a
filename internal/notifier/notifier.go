package notifier

import "context"

type Client interface {
	// Check records unseen feed items and notifies the owner about new
	// uploads by other users. It reports how many notifications went out.
	Check(ctx context.Context) (int, error)
	// Cleanup forgets old seen records and idle rate-limit buckets.
	Cleanup(ctx context.Context) error
	// Start schedules Check and Cleanup until ctx is done.
	Start(ctx context.Context) error
}
