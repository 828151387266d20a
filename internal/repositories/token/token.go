package token

import (
	"context"
	"fmt"

	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

var ErrNotFound = fmt.Errorf("token %w", apperrors.ErrNotFound)

//go:generate go run go.uber.org/mock/mockgen -source=token.go -destination=mocks/mock.go

// Repository is the durable key/value home of access tokens.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	// Save inserts or replaces the token stored under key.
	Save(ctx context.Context, key, token string) error
	Delete(ctx context.Context, key string) error
}
