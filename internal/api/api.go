package api

import (
	"context"

	"github.com/orgball2608/media-share-bot/internal/domain"
)

// TokenProvider supplies the access token sent as x-access-token on
// authenticated calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=mocks/mock.go

type AuthClient interface {
	PostLogin(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
}

type UserClient interface {
	// GetUserByToken takes the token explicitly so a stored token can be
	// validated before a session exists.
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	PostUser(ctx context.Context, user domain.NewUser) (*domain.MutationResult, error)
	PutUser(ctx context.Context, update domain.UserUpdate) (*domain.MutationResult, error)
	CheckUsername(ctx context.Context, username string) (bool, error)
}

type MediaClient interface {
	GetMedia(ctx context.Context, fileID int) (*domain.Media, error)
	PostMedia(ctx context.Context, upload domain.Upload) (*domain.MutationResult, error)
	PutMedia(ctx context.Context, fileID int, update domain.MediaUpdate) (*domain.MutationResult, error)
	DeleteMedia(ctx context.Context, fileID int) (*domain.MutationResult, error)
}

type TagClient interface {
	GetFilesByTag(ctx context.Context, tag string) ([]domain.TaggedFile, error)
	PostTag(ctx context.Context, tag domain.Tag) (*domain.MutationResult, error)
}

type FavouriteClient interface {
	GetFavourites(ctx context.Context) ([]domain.Favourite, error)
	GetFavouritesByFileID(ctx context.Context, fileID int) ([]domain.Favourite, error)
	PostFavourite(ctx context.Context, fileID int) (*domain.MutationResult, error)
	DeleteFavourite(ctx context.Context, fileID int) (*domain.MutationResult, error)
}

type CommentClient interface {
	GetCommentsByFileID(ctx context.Context, fileID int) ([]domain.Comment, error)
	PostComment(ctx context.Context, comment domain.NewComment) (*domain.MutationResult, error)
	DeleteComment(ctx context.Context, commentID int) (*domain.MutationResult, error)
}
