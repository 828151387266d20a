package feed

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/orgball2608/media-share-bot/internal/api"
	mock_api "github.com/orgball2608/media-share-bot/internal/api/mocks"
	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

const appTag = "wbma-test"

type stubUser struct {
	user *domain.User
}

func (s stubUser) RequireUser() (domain.User, error) {
	if s.user == nil {
		return domain.User{}, apperrors.ErrNotLoggedIn
	}
	return *s.user, nil
}

func newTestLoader(ctrl *gomock.Controller, user *domain.User) (*Loader, *mock_api.MockTagClient, *mock_api.MockMediaClient) {
	tags := mock_api.NewMockTagClient(ctrl)
	media := mock_api.NewMockMediaClient(ctrl)
	return &Loader{
		tags:    tags,
		media:   media,
		session: stubUser{user: user},
		appTag:  appTag,
		logger:  logger.Nop(),
	}, tags, media
}

func tagged(fileID, userID int) domain.TaggedFile {
	return domain.TaggedFile{Media: domain.Media{FileID: fileID, UserID: userID}, Tag: appTag}
}

func expectMedia(media *mock_api.MockMediaClient, ids ...int) {
	for _, id := range ids {
		media.EXPECT().GetMedia(gomock.Any(), id).Return(&domain.Media{FileID: id, Title: "file"}, nil)
	}
}

func fileIDs(items []domain.Media) []int {
	ids := make([]int, len(items))
	for i, m := range items {
		ids[i] = m.FileID
	}
	return ids
}

func TestLoadReturnsNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, tags, media := newTestLoader(ctrl, nil)
	ctx := context.Background()

	tags.EXPECT().GetFilesByTag(ctx, appTag).Return([]domain.TaggedFile{tagged(1, 5), tagged(2, 6), tagged(3, 5)}, nil)
	expectMedia(media, 1, 2, 3)

	items, err := l.Load(ctx, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []int{3, 2, 1}
	if got := fileIDs(items); !equalInts(got, want) {
		t.Errorf("Load() ids = %v, want %v", got, want)
	}
}

func TestLoadMyFilesOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, tags, media := newTestLoader(ctrl, &domain.User{UserID: 5})
	ctx := context.Background()

	tags.EXPECT().GetFilesByTag(ctx, appTag).Return([]domain.TaggedFile{tagged(1, 5), tagged(2, 6), tagged(3, 5)}, nil)
	expectMedia(media, 1, 3)

	items, err := l.Load(ctx, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := fileIDs(items), []int{3, 1}; !equalInts(got, want) {
		t.Errorf("Load() ids = %v, want %v", got, want)
	}
}

func TestLoadMyFilesOnlyRequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, tags, _ := newTestLoader(ctrl, nil)
	ctx := context.Background()

	tags.EXPECT().GetFilesByTag(ctx, appTag).Return([]domain.TaggedFile{tagged(1, 5)}, nil)

	if _, err := l.Load(ctx, true); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Errorf("Load() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestLoadFailsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, tags, media := newTestLoader(ctrl, nil)
	ctx := context.Background()

	tags.EXPECT().GetFilesByTag(ctx, appTag).Return([]domain.TaggedFile{tagged(1, 5), tagged(2, 6)}, nil)
	media.EXPECT().GetMedia(gomock.Any(), 1).Return(&domain.Media{FileID: 1}, nil).AnyTimes()
	media.EXPECT().GetMedia(gomock.Any(), 2).Return(nil, &api.Error{StatusCode: http.StatusNotFound, Message: "Media not found"})

	items, err := l.Load(ctx, false)
	if err == nil {
		t.Fatal("Load() expected error")
	}
	if items != nil {
		t.Errorf("Load() items = %v, want nil", items)
	}
	if api.StatusCode(err) != http.StatusNotFound {
		t.Errorf("Load() error = %v, want the 404 from file 2", err)
	}
}

func TestLoadEmptyTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	l, tags, _ := newTestLoader(ctrl, nil)
	ctx := context.Background()

	tags.EXPECT().GetFilesByTag(ctx, appTag).Return([]domain.TaggedFile{}, nil)

	items, err := l.Load(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("Load() = %v, want empty", items)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
