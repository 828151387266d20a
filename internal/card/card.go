package card

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
	"github.com/samber/lo"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Card is a media item with everything needed to render it.
type Card struct {
	Media       domain.Media
	Owner       domain.User
	Likes       []domain.Favourite
	Comments    []domain.Comment
	Avatar      string
	UserLikesIt bool
	IsOwner     bool
}

// LikeState is the like count of a file as seen by the session user.
type LikeState struct {
	Likes       int
	UserLikesIt bool
}

type Opts struct {
	fx.In

	Users      api.UserClient
	Media      api.MediaClient
	Tags       api.TagClient
	Favourites api.FavouriteClient
	Comments   api.CommentClient
	Session    *session.Session
	Config     *config.Config
	Logger     logger.Logger
}

type Service struct {
	users      api.UserClient
	media      api.MediaClient
	tags       api.TagClient
	favourites api.FavouriteClient
	comments   api.CommentClient
	session    *session.Session
	uploadsURL string
	logger     logger.Logger
}

func New(opts Opts) *Service {
	uploads := opts.Config.MediaAPI.UploadsURL
	if uploads != "" && !strings.HasSuffix(uploads, "/") {
		uploads += "/"
	}
	return &Service{
		users:      opts.Users,
		media:      opts.Media,
		tags:       opts.Tags,
		favourites: opts.Favourites,
		comments:   opts.Comments,
		session:    opts.Session,
		uploadsURL: uploads,
		logger:     opts.Logger.WithComponent("Card"),
	}
}

// FileURL resolves a filename from the API against the uploads location.
func (s *Service) FileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return s.uploadsURL + filename
}

// Show fetches a file by id and loads its card.
func (s *Service) Show(ctx context.Context, fileID int) (*Card, error) {
	m, err := s.media.GetMedia(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, *m)
}

// Load gathers owner, likes, comments and the owner's avatar concurrently.
// Owner and likes are required; comments and avatar degrade to empty.
func (s *Service) Load(ctx context.Context, m domain.Media) (*Card, error) {
	c := &Card{Media: m}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owner, err := s.users.GetUserByID(gctx, m.UserID)
		if err != nil {
			return fmt.Errorf("owner of file %d: %w", m.FileID, err)
		}
		c.Owner = *owner
		return nil
	})
	g.Go(func() error {
		likes, err := s.favourites.GetFavouritesByFileID(gctx, m.FileID)
		if err != nil {
			return fmt.Errorf("likes of file %d: %w", m.FileID, err)
		}
		c.Likes = likes
		return nil
	})
	g.Go(func() error {
		comments, err := s.comments.GetCommentsByFileID(gctx, m.FileID)
		if err != nil {
			s.logger.Warn("Failed to load comments", "file_id", m.FileID, "error", err)
			return nil
		}
		c.Comments = comments
		return nil
	})
	g.Go(func() error {
		c.Avatar = s.Avatar(gctx, m.UserID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if user, ok := s.session.CurrentUser(); ok {
		c.UserLikesIt = likedBy(c.Likes, user.UserID)
		c.IsOwner = user.UserID == m.UserID
	}
	return c, nil
}

// Avatar returns the URL of the user's newest avatar file, or "" when the
// user has none or the lookup fails.
func (s *Service) Avatar(ctx context.Context, userID int) string {
	files, err := s.tags.GetFilesByTag(ctx, domain.AvatarTag(userID))
	if err != nil {
		s.logger.Debug("Avatar lookup failed", "user_id", userID, "error", err)
		return ""
	}
	if len(files) == 0 {
		return ""
	}
	return s.FileURL(files[len(files)-1].Filename)
}

// Like adds the session user's favourite. A failed post whose like turns
// out to exist already counts as success.
func (s *Service) Like(ctx context.Context, fileID int) (LikeState, error) {
	user, err := s.session.RequireUser()
	if err != nil {
		return LikeState{}, err
	}

	if _, postErr := s.favourites.PostFavourite(ctx, fileID); postErr != nil {
		likes, err := s.favourites.GetFavouritesByFileID(ctx, fileID)
		if err != nil || !likedBy(likes, user.UserID) {
			return LikeState{}, postErr
		}
		s.logger.Debug("File already liked", "file_id", fileID, "error", postErr)
		return LikeState{Likes: len(likes), UserLikesIt: true}, nil
	}

	return s.likeState(ctx, fileID, user.UserID)
}

func (s *Service) Unlike(ctx context.Context, fileID int) (LikeState, error) {
	user, err := s.session.RequireUser()
	if err != nil {
		return LikeState{}, err
	}
	if _, err := s.favourites.DeleteFavourite(ctx, fileID); err != nil {
		return LikeState{}, err
	}
	return s.likeState(ctx, fileID, user.UserID)
}

func (s *Service) likeState(ctx context.Context, fileID, userID int) (LikeState, error) {
	likes, err := s.favourites.GetFavouritesByFileID(ctx, fileID)
	if err != nil {
		return LikeState{}, err
	}
	return LikeState{Likes: len(likes), UserLikesIt: likedBy(likes, userID)}, nil
}

func (s *Service) Comments(ctx context.Context, fileID int) ([]domain.Comment, error) {
	return s.comments.GetCommentsByFileID(ctx, fileID)
}

func (s *Service) AddComment(ctx context.Context, fileID int, text string) (*domain.MutationResult, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment is empty", apperrors.ErrInvalidInput)
	}
	return s.comments.PostComment(ctx, domain.NewComment{FileID: fileID, Comment: text})
}

func (s *Service) DeleteComment(ctx context.Context, commentID int) (*domain.MutationResult, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	return s.comments.DeleteComment(ctx, commentID)
}

// Delete removes a file owned by the session user and signals the feeds.
func (s *Service) Delete(ctx context.Context, fileID int) (*domain.MutationResult, error) {
	user, err := s.session.RequireUser()
	if err != nil {
		return nil, err
	}
	m, err := s.media.GetMedia(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if m.UserID != user.UserID {
		return nil, fmt.Errorf("%w: file %d belongs to user %d", apperrors.ErrForbidden, fileID, m.UserID)
	}

	res, err := s.media.DeleteMedia(ctx, fileID)
	if err != nil {
		return nil, err
	}
	s.session.NotifyUpdate()
	s.logger.Info("File deleted", "file_id", fileID)
	return res, nil
}

// Favourites lists the files the session user likes, in like order.
func (s *Service) Favourites(ctx context.Context) ([]domain.Media, error) {
	if _, err := s.session.RequireUser(); err != nil {
		return nil, err
	}
	favs, err := s.favourites.GetFavourites(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Media, len(favs))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range favs {
		g.Go(func() error {
			m, err := s.media.GetMedia(gctx, f.FileID)
			if err != nil {
				return fmt.Errorf("file %d: %w", f.FileID, err)
			}
			items[i] = *m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func likedBy(likes []domain.Favourite, userID int) bool {
	return lo.ContainsBy(likes, func(f domain.Favourite) bool {
		return f.UserID == userID
	})
}
