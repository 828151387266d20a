package apiimpl

import (
	"context"
	"net/http"
	"strconv"

	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

func (c *Impl) GetCommentsByFileID(ctx context.Context, fileID int) ([]domain.Comment, error) {
	var out []domain.Comment
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"comments", "file", strconv.Itoa(fileID)},
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "getCommentsByFileId")
	}
	return out, nil
}

func (c *Impl) PostComment(ctx context.Context, comment domain.NewComment) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodPost,
		segments: []string{"comments"},
		auth:     true,
		payload:  comment,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "postComment")
	}
	return &out, nil
}

func (c *Impl) DeleteComment(ctx context.Context, commentID int) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodDelete,
		segments: []string{"comments", strconv.Itoa(commentID)},
		auth:     true,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "deleteComment")
	}
	return &out, nil
}
