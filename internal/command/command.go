package command

import "context"

type Client interface {
	// HandleCommand consumes Telegram updates until ctx is done.
	HandleCommand(ctx context.Context) error
}
