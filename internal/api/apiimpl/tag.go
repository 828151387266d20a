package apiimpl

import (
	"context"
	"net/http"

	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

func (c *Impl) GetFilesByTag(ctx context.Context, tag string) ([]domain.TaggedFile, error) {
	var out []domain.TaggedFile
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"tags", tag},
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "getFilesByTag")
	}
	return out, nil
}

func (c *Impl) PostTag(ctx context.Context, tag domain.Tag) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodPost,
		segments: []string{"tags"},
		auth:     true,
		payload:  tag,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "postTag")
	}
	return &out, nil
}
