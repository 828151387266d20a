package apiimpl

import (
	"context"
	"net/http"

	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

func (c *Impl) PostLogin(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	var out domain.LoginResult
	err := c.doFetch(ctx, request{
		method:   http.MethodPost,
		segments: []string{"login"},
		payload:  creds,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "postLogin")
	}
	return &out, nil
}
