package seenmedia

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/media-share-bot/internal/domain"
)

var ErrAlreadyExists = errors.New("media already seen")

//go:generate go run go.uber.org/mock/mockgen -source=seenmedia.go -destination=mocks/mock.go

type Repository interface {
	// Create records a feed item; ErrAlreadyExists when it was recorded before.
	Create(ctx context.Context, media domain.SeenMedia) error
	Exists(ctx context.Context, fileID int) (bool, error)
	Count(ctx context.Context) (int64, error)
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
