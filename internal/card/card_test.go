package card

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/orgball2608/media-share-bot/internal/api"
	mock_api "github.com/orgball2608/media-share-bot/internal/api/mocks"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/internal/session"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

const uploads = "https://media.example/uploads/"

type fixture struct {
	users      *mock_api.MockUserClient
	media      *mock_api.MockMediaClient
	tags       *mock_api.MockTagClient
	favourites *mock_api.MockFavouriteClient
	comments   *mock_api.MockCommentClient
	session    *session.Session
	svc        *Service
}

func newFixture(t *testing.T, user *domain.User) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:      mock_api.NewMockUserClient(ctrl),
		media:      mock_api.NewMockMediaClient(ctrl),
		tags:       mock_api.NewMockTagClient(ctrl),
		favourites: mock_api.NewMockFavouriteClient(ctrl),
		comments:   mock_api.NewMockCommentClient(ctrl),
		session:    session.New(session.Opts{Logger: logger.Nop()}),
	}
	if user != nil {
		f.session.SetUser(*user)
	}
	f.svc = &Service{
		users:      f.users,
		media:      f.media,
		tags:       f.tags,
		favourites: f.favourites,
		comments:   f.comments,
		session:    f.session,
		uploadsURL: uploads,
		logger:     logger.Nop(),
	}
	return f
}

func TestAvatarUsesLastTaggedFile(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	f.tags.EXPECT().GetFilesByTag(ctx, "avatar_3").Return([]domain.TaggedFile{
		{Media: domain.Media{Filename: "old.jpg"}},
		{Media: domain.Media{Filename: "new.jpg"}},
	}, nil)

	if got, want := f.svc.Avatar(ctx, 3), uploads+"new.jpg"; got != want {
		t.Errorf("Avatar() = %q, want %q", got, want)
	}
}

func TestAvatarMissingIsSilent(t *testing.T) {
	tests := []struct {
		name  string
		files []domain.TaggedFile
		err   error
	}{
		{name: "no files", files: []domain.TaggedFile{}},
		{name: "lookup fails", err: &api.Error{StatusCode: http.StatusInternalServerError, Message: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			ctx := context.Background()
			f.tags.EXPECT().GetFilesByTag(ctx, "avatar_8").Return(tt.files, tt.err)

			if got := f.svc.Avatar(ctx, 8); got != "" {
				t.Errorf("Avatar() = %q, want empty", got)
			}
		})
	}
}

func TestLoadCard(t *testing.T) {
	f := newFixture(t, &domain.User{UserID: 2})
	ctx := context.Background()
	m := domain.Media{FileID: 10, UserID: 4, Title: "Sunset"}

	f.users.EXPECT().GetUserByID(gomock.Any(), 4).Return(&domain.User{UserID: 4, Username: "ann"}, nil)
	f.favourites.EXPECT().GetFavouritesByFileID(gomock.Any(), 10).Return([]domain.Favourite{{FileID: 10, UserID: 2}, {FileID: 10, UserID: 7}}, nil)
	f.comments.EXPECT().GetCommentsByFileID(gomock.Any(), 10).Return(nil, errors.New("comments down"))
	f.tags.EXPECT().GetFilesByTag(gomock.Any(), "avatar_4").Return([]domain.TaggedFile{}, nil)

	c, err := f.svc.Load(ctx, m)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Owner.Username != "ann" {
		t.Errorf("Owner = %+v", c.Owner)
	}
	if len(c.Likes) != 2 || !c.UserLikesIt {
		t.Errorf("Likes = %v, UserLikesIt = %v", c.Likes, c.UserLikesIt)
	}
	if c.IsOwner {
		t.Error("IsOwner = true for someone else's file")
	}
	if len(c.Comments) != 0 || c.Avatar != "" {
		t.Errorf("Comments = %v, Avatar = %q, want empty", c.Comments, c.Avatar)
	}
}

func TestLoadCardOwnerFailure(t *testing.T) {
	f := newFixture(t, nil)
	m := domain.Media{FileID: 10, UserID: 4}

	f.users.EXPECT().GetUserByID(gomock.Any(), 4).Return(nil, &api.Error{StatusCode: http.StatusNotFound, Message: "User not found"})
	f.favourites.EXPECT().GetFavouritesByFileID(gomock.Any(), 10).Return(nil, nil).AnyTimes()
	f.comments.EXPECT().GetCommentsByFileID(gomock.Any(), 10).Return(nil, nil).AnyTimes()
	f.tags.EXPECT().GetFilesByTag(gomock.Any(), "avatar_4").Return(nil, nil).AnyTimes()

	if _, err := f.svc.Load(context.Background(), m); api.StatusCode(err) != http.StatusNotFound {
		t.Errorf("Load() error = %v, want the owner 404", err)
	}
}

func TestLike(t *testing.T) {
	postErr := &api.Error{StatusCode: http.StatusBadRequest, Message: "Duplicate entry"}

	tests := []struct {
		name    string
		setup   func(f *fixture)
		want    LikeState
		wantErr error
	}{
		{
			name: "new like",
			setup: func(f *fixture) {
				f.favourites.EXPECT().PostFavourite(gomock.Any(), 5).Return(&domain.MutationResult{FavouriteID: 1}, nil)
				f.favourites.EXPECT().GetFavouritesByFileID(gomock.Any(), 5).Return([]domain.Favourite{{UserID: 2}, {UserID: 9}}, nil)
			},
			want: LikeState{Likes: 2, UserLikesIt: true},
		},
		{
			name: "already liked",
			setup: func(f *fixture) {
				f.favourites.EXPECT().PostFavourite(gomock.Any(), 5).Return(nil, postErr)
				f.favourites.EXPECT().GetFavouritesByFileID(gomock.Any(), 5).Return([]domain.Favourite{{UserID: 2}}, nil)
			},
			want: LikeState{Likes: 1, UserLikesIt: true},
		},
		{
			name: "failure without existing like",
			setup: func(f *fixture) {
				f.favourites.EXPECT().PostFavourite(gomock.Any(), 5).Return(nil, postErr)
				f.favourites.EXPECT().GetFavouritesByFileID(gomock.Any(), 5).Return([]domain.Favourite{{UserID: 9}}, nil)
			},
			wantErr: postErr,
		},
		{
			name: "failure and likes unreadable",
			setup: func(f *fixture) {
				f.favourites.EXPECT().PostFavourite(gomock.Any(), 5).Return(nil, postErr)
				f.favourites.EXPECT().GetFavouritesByFileID(gomock.Any(), 5).Return(nil, errors.New("down"))
			},
			wantErr: postErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &domain.User{UserID: 2})
			tt.setup(f)

			got, err := f.svc.Like(context.Background(), 5)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Like() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Like() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLikeRequiresLogin(t *testing.T) {
	f := newFixture(t, nil)

	if _, err := f.svc.Like(context.Background(), 5); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Errorf("Like() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestDeleteOnlyOwnFiles(t *testing.T) {
	f := newFixture(t, &domain.User{UserID: 2})
	ctx := context.Background()
	before := f.session.Generation()

	f.media.EXPECT().GetMedia(ctx, 7).Return(&domain.Media{FileID: 7, UserID: 3}, nil)
	if _, err := f.svc.Delete(ctx, 7); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("Delete() error = %v, want ErrForbidden", err)
	}
	if f.session.Generation() != before {
		t.Error("refused delete signalled an update")
	}

	f.media.EXPECT().GetMedia(ctx, 8).Return(&domain.Media{FileID: 8, UserID: 2}, nil)
	f.media.EXPECT().DeleteMedia(ctx, 8).Return(&domain.MutationResult{Message: "File deleted"}, nil)
	if _, err := f.svc.Delete(ctx, 8); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if f.session.Generation() != before+1 {
		t.Error("delete did not signal an update")
	}
}

func TestAddCommentRejectsEmpty(t *testing.T) {
	f := newFixture(t, &domain.User{UserID: 2})

	if _, err := f.svc.AddComment(context.Background(), 1, "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("AddComment() error = %v, want ErrInvalidInput", err)
	}
}

func TestFavouritesKeepsOrder(t *testing.T) {
	f := newFixture(t, &domain.User{UserID: 2})
	ctx := context.Background()

	f.favourites.EXPECT().GetFavourites(ctx).Return([]domain.Favourite{{FileID: 4}, {FileID: 1}}, nil)
	f.media.EXPECT().GetMedia(gomock.Any(), 4).Return(&domain.Media{FileID: 4}, nil)
	f.media.EXPECT().GetMedia(gomock.Any(), 1).Return(&domain.Media{FileID: 1}, nil)

	items, err := f.svc.Favourites(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].FileID != 4 || items[1].FileID != 1 {
		t.Errorf("Favourites() = %+v", items)
	}
}
