package apiimpl

import (
	"context"
	"net/http"
	"strconv"

	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

// GetFavourites lists the favourites of the token's owner.
func (c *Impl) GetFavourites(ctx context.Context) ([]domain.Favourite, error) {
	var out []domain.Favourite
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"favourites"},
		auth:     true,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "getFavourites")
	}
	return out, nil
}

func (c *Impl) GetFavouritesByFileID(ctx context.Context, fileID int) ([]domain.Favourite, error) {
	var out []domain.Favourite
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"favourites", "file", strconv.Itoa(fileID)},
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "getFavouritesByFileId")
	}
	return out, nil
}

func (c *Impl) PostFavourite(ctx context.Context, fileID int) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodPost,
		segments: []string{"favourites"},
		auth:     true,
		payload: struct {
			FileID int `json:"file_id"`
		}{FileID: fileID},
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "postFavourite")
	}
	return &out, nil
}

func (c *Impl) DeleteFavourite(ctx context.Context, fileID int) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodDelete,
		segments: []string{"favourites", "file", strconv.Itoa(fileID)},
		auth:     true,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "deleteFavourite")
	}
	return &out, nil
}
