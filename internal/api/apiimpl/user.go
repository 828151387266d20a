package apiimpl

import (
	"context"
	"net/http"
	"strconv"

	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

func (c *Impl) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	var out domain.User
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"users", "user"},
		token:    token,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "getUserByToken")
	}
	return &out, nil
}

func (c *Impl) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	var out domain.User
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"users", strconv.Itoa(userID)},
		auth:     true,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "getUserById")
	}
	return &out, nil
}

func (c *Impl) PostUser(ctx context.Context, user domain.NewUser) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodPost,
		segments: []string{"users"},
		payload:  user,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "postUser")
	}
	return &out, nil
}

func (c *Impl) PutUser(ctx context.Context, update domain.UserUpdate) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodPut,
		segments: []string{"users"},
		auth:     true,
		payload:  update,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "putUser")
	}
	return &out, nil
}

// CheckUsername reports only the "available" flag of the lookup.
func (c *Impl) CheckUsername(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, apperrors.Wrap(apperrors.ErrInvalidInput, "checkUsername")
	}

	var out domain.UsernameAvailability
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"users", "username", username},
	}, &out)
	if err != nil {
		return false, apperrors.Wrap(err, "checkUsername")
	}
	return out.Available, nil
}
