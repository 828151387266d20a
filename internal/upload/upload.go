package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/media-share-bot/internal/api"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/internal/session"
	"github.com/orgball2608/media-share-bot/pkg/config"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Media   api.MediaClient
	Tags    api.TagClient
	Session *session.Session
	Config  *config.Config
	Logger  logger.Logger
}

type Service struct {
	media   api.MediaClient
	tags    api.TagClient
	session *session.Session
	appTag  string
	maxDim  int
	logger  logger.Logger
}

func New(opts Opts) *Service {
	return &Service{
		media:   opts.Media,
		tags:    opts.Tags,
		session: opts.Session,
		appTag:  opts.Config.MediaAPI.AppTag,
		maxDim:  opts.Config.Upload.MaxDimension,
		logger:  opts.Logger.WithComponent("Upload"),
	}
}

// Upload posts a file, tags it for the app feed and signals the feeds.
func (s *Service) Upload(ctx context.Context, up domain.Upload) (*domain.MutationResult, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	up.Title = strings.TrimSpace(up.Title)
	up.Description = strings.TrimSpace(up.Description)
	if up.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}

	res, err := s.postTagged(ctx, up, s.appTag)
	if err != nil {
		return nil, err
	}
	s.session.NotifyUpdate()
	s.logger.Info("File uploaded", "file_id", res.FileID, "title", up.Title)
	return res, nil
}

// Modify changes the title and/or description of a file.
func (s *Service) Modify(ctx context.Context, fileID int, update domain.MediaUpdate) (*domain.MutationResult, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	update.Title = strings.TrimSpace(update.Title)
	update.Description = strings.TrimSpace(update.Description)
	if update.Title == "" && update.Description == "" {
		return nil, fmt.Errorf("%w: nothing to change", apperrors.ErrInvalidInput)
	}

	res, err := s.media.PutMedia(ctx, fileID, update)
	if err != nil {
		return nil, err
	}
	s.session.NotifyUpdate()
	s.logger.Info("File modified", "file_id", fileID)
	return res, nil
}

// SetAvatar uploads a picture tagged as the session user's newest avatar.
func (s *Service) SetAvatar(ctx context.Context, up domain.Upload) (*domain.MutationResult, error) {
	user, err := s.session.RequireUser()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(up.Title) == "" {
		up.Title = "avatar"
	}

	res, err := s.postTagged(ctx, up, domain.AvatarTag(user.UserID))
	if err != nil {
		return nil, err
	}
	s.session.NotifyUpdate()
	s.logger.Info("Avatar updated", "file_id", res.FileID, "user_id", user.UserID)
	return res, nil
}

func (s *Service) postTagged(ctx context.Context, up domain.Upload, tag string) (*domain.MutationResult, error) {
	if len(up.Data) == 0 {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrInvalidInput)
	}

	data, resized, err := downscale(up.Data, s.maxDim)
	if err != nil {
		return nil, err
	}
	if resized {
		s.logger.Debug("Image downscaled", "filename", up.Filename, "from_bytes", len(up.Data), "to_bytes", len(data))
		up.Data = data
	}

	res, err := s.media.PostMedia(ctx, up)
	if err != nil {
		return nil, err
	}

	if _, err := s.tags.PostTag(ctx, domain.Tag{FileID: res.FileID, Tag: tag}); err != nil {
		// An untagged file would never show up anywhere.
		if _, delErr := s.media.DeleteMedia(ctx, res.FileID); delErr != nil {
			s.logger.Error("Failed to remove untagged file", "file_id", res.FileID, "error", delErr)
		}
		return nil, err
	}
	return res, nil
}
