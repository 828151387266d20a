package commandimpl

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/media-share-bot/internal/account"
	mock_api "github.com/orgball2608/media-share-bot/internal/api/mocks"
	"github.com/orgball2608/media-share-bot/internal/card"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/internal/feed"
	"github.com/orgball2608/media-share-bot/internal/ratelimit"
	"github.com/orgball2608/media-share-bot/internal/session"
	mock_telegram "github.com/orgball2608/media-share-bot/internal/telegram/mocks"
	"github.com/orgball2608/media-share-bot/internal/upload"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

const (
	ownerID = int64(42)
	chatID  = int64(42)
)

type sourceFunc func(ctx context.Context, myFilesOnly bool) ([]domain.Media, error)

func (f sourceFunc) Load(ctx context.Context, myFilesOnly bool) ([]domain.Media, error) {
	return f(ctx, myFilesOnly)
}

type fixture struct {
	tg         *mock_telegram.MockClient
	users      *mock_api.MockUserClient
	media      *mock_api.MockMediaClient
	tags       *mock_api.MockTagClient
	favourites *mock_api.MockFavouriteClient
	comments   *mock_api.MockCommentClient
	session    *session.Session
	cmd        *CommandImpl
}

func newFixture(t *testing.T, source sourceFunc) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.Nop()

	cfg := &config.Config{}
	cfg.Telegram.User = ownerID
	cfg.MediaAPI.AppTag = "wbma-test"
	cfg.MediaAPI.UploadsURL = "https://media.example/uploads/"
	cfg.Upload.MaxDimension = 1920

	f := &fixture{
		tg:         mock_telegram.NewMockClient(ctrl),
		users:      mock_api.NewMockUserClient(ctrl),
		media:      mock_api.NewMockMediaClient(ctrl),
		tags:       mock_api.NewMockTagClient(ctrl),
		favourites: mock_api.NewMockFavouriteClient(ctrl),
		comments:   mock_api.NewMockCommentClient(ctrl),
	}
	f.session = session.New(session.Opts{Users: f.users, Logger: log})

	if source == nil {
		source = func(context.Context, bool) ([]domain.Media, error) { return nil, nil }
	}

	f.cmd = New(Opts{
		Telegram: f.tg,
		Session:  f.session,
		Feeds:    feed.NewFeeds(source, f.session, log),
		Cards: card.New(card.Opts{
			Users:      f.users,
			Media:      f.media,
			Tags:       f.tags,
			Favourites: f.favourites,
			Comments:   f.comments,
			Session:    f.session,
			Config:     cfg,
			Logger:     log,
		}),
		Uploads: upload.New(upload.Opts{
			Media:   f.media,
			Tags:    f.tags,
			Session: f.session,
			Config:  cfg,
			Logger:  log,
		}),
		Accounts: account.New(account.Opts{Users: f.users, Session: f.session, Logger: log}),
		Limiter:  ratelimit.NewInMemoryLimiter(100, time.Second, 100),
		Logger:   log,
		Config:   cfg,
	})
	return f
}

func (f *fixture) login() {
	f.session.SetUser(domain.User{UserID: 3, Username: "bob"})
}

func commandUpdate(fromID int64, text string) tgbotapi.Update {
	cmd, _, _ := strings.Cut(text, " ")
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: fromID},
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(cmd)},
		},
	}}
}

func expectReply(t *testing.T, f *fixture, contains string) {
	t.Helper()
	f.tg.EXPECT().SendMessage(chatID, gomock.Any()).DoAndReturn(func(_ int64, text string) (int, error) {
		if !strings.Contains(text, contains) {
			t.Errorf("reply %q does not contain %q", text, contains)
		}
		return 1, nil
	})
}

func TestStrangersAreRejected(t *testing.T) {
	f := newFixture(t, nil)
	expectReply(t, f, "private")

	f.cmd.handleUpdate(context.Background(), commandUpdate(7, "/feed"))
}

func TestNoOwnerConfiguredRejectsEveryone(t *testing.T) {
	f := newFixture(t, nil)
	f.cmd.Config.Telegram.User = 0
	f.login()
	ctx := context.Background()

	expectReply(t, f, "private")
	f.cmd.handleUpdate(ctx, commandUpdate(999, "/help"))

	// The media client mocks fail the test if the delete goes through.
	f.tg.EXPECT().AnswerCallback("cb-3", "Sorry, this bot is private.").Return(nil)
	f.cmd.handleUpdate(ctx, tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-3",
		From:    &tgbotapi.User{ID: 999},
		Data:    "delete:yes:5",
		Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: chatID}},
	}})
}

func TestRateLimit(t *testing.T) {
	f := newFixture(t, nil)
	f.cmd.Limiter = ratelimit.NewInMemoryLimiter(1, time.Hour, 1)

	expectReply(t, f, "Welcome")
	expectReply(t, f, "slow down")

	f.cmd.handleUpdate(context.Background(), commandUpdate(ownerID, "/help"))
	f.cmd.handleUpdate(context.Background(), commandUpdate(ownerID, "/help"))
}

func TestLikeRequiresLogin(t *testing.T) {
	f := newFixture(t, nil)
	expectReply(t, f, "/login")

	f.cmd.handleUpdate(context.Background(), commandUpdate(ownerID, "/like 5"))
}

func TestLike(t *testing.T) {
	f := newFixture(t, nil)
	f.login()

	f.favourites.EXPECT().PostFavourite(gomock.Any(), 5).Return(&domain.MutationResult{FavouriteID: 1}, nil)
	f.favourites.EXPECT().GetFavouritesByFileID(gomock.Any(), 5).Return([]domain.Favourite{{FileID: 5, UserID: 3}}, nil)
	expectReply(t, f, "Liked #5. It has 1 like(s) now.")

	f.cmd.handleUpdate(context.Background(), commandUpdate(ownerID, "/like 5"))
}

func TestBadIDIsReported(t *testing.T) {
	f := newFixture(t, nil)
	f.login()
	expectReply(t, f, "is not an id")

	f.cmd.handleUpdate(context.Background(), commandUpdate(ownerID, "/show abc"))
}

func TestFeedListsItems(t *testing.T) {
	f := newFixture(t, func(_ context.Context, myFilesOnly bool) ([]domain.Media, error) {
		if myFilesOnly {
			t.Error("home feed asked for my files only")
		}
		return []domain.Media{{FileID: 3, Title: "Lake"}, {FileID: 1, Title: "Tree"}}, nil
	})
	expectReply(t, f, "#3 Lake\n#1 Tree")

	f.cmd.handleUpdate(context.Background(), commandUpdate(ownerID, "/feed"))
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	f := newFixture(t, nil)
	f.login()
	ctx := context.Background()

	f.tg.EXPECT().SendConfirmation(chatID, gomock.Any(), "delete:yes:5", "delete:no:5").Return(9, nil)
	f.cmd.handleUpdate(ctx, commandUpdate(ownerID, "/delete 5"))

	f.tg.EXPECT().AnswerCallback("cb-1", "").Return(nil)
	f.media.EXPECT().GetMedia(gomock.Any(), 5).Return(&domain.Media{FileID: 5, UserID: 3}, nil)
	f.media.EXPECT().DeleteMedia(gomock.Any(), 5).Return(&domain.MutationResult{Message: "File deleted"}, nil)
	f.tg.EXPECT().EditMessageText(chatID, 9, "🗑 #5 deleted.").Return(nil)

	f.cmd.handleUpdate(ctx, tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: ownerID},
		Data:    "delete:yes:5",
		Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: chatID}},
	}})

	if f.session.Generation() != 1 {
		t.Error("delete did not signal an update")
	}
}

func TestDeleteDeclined(t *testing.T) {
	f := newFixture(t, nil)
	f.login()

	f.tg.EXPECT().AnswerCallback("cb-2", "").Return(nil)
	f.tg.EXPECT().EditMessageText(chatID, 9, "Kept #5.").Return(nil)

	f.cmd.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-2",
		From:    &tgbotapi.User{ID: ownerID},
		Data:    "delete:no:5",
		Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: chatID}},
	}})
}

func TestPhotoUpload(t *testing.T) {
	f := newFixture(t, nil)
	f.login()
	ctx := context.Background()

	expectReply(t, f, "Uploading")
	f.tg.EXPECT().DownloadFile(gomock.Any(), "big").Return([]byte("not really a jpeg"), nil)
	f.media.EXPECT().PostMedia(gomock.Any(), domain.Upload{
		Title:       "Sunset",
		Description: "at the beach",
		Filename:    "u-big.jpg",
		Data:        []byte("not really a jpeg"),
	}).Return(&domain.MutationResult{FileID: 77}, nil)
	f.tags.EXPECT().PostTag(gomock.Any(), domain.Tag{FileID: 77, Tag: "wbma-test"}).Return(&domain.MutationResult{}, nil)
	f.tg.EXPECT().EditMessageText(chatID, 1, "✅ Uploaded as #77.").Return(nil)

	f.cmd.handleUpdate(ctx, tgbotapi.Update{Message: &tgbotapi.Message{
		From:    &tgbotapi.User{ID: ownerID},
		Chat:    &tgbotapi.Chat{ID: chatID},
		Caption: "Sunset | at the beach",
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", FileUniqueID: "u-small"},
			{FileID: "big", FileUniqueID: "u-big"},
		},
	}})
}

func TestParseHelpers(t *testing.T) {
	if id, err := parseID(" #12 "); err != nil || id != 12 {
		t.Errorf("parseID() = %d, %v", id, err)
	}
	if _, err := parseID("-1"); err == nil {
		t.Error("parseID() accepted a negative id")
	}

	title, description := splitTitle(" Sunset | at | the beach ")
	if title != "Sunset" || description != "at | the beach" {
		t.Errorf("splitTitle() = %q, %q", title, description)
	}

	action, answer, id, ok := parseCallbackData(callbackData(callbackDelete, answerYes, 8))
	if !ok || action != "delete" || answer != "yes" || id != 8 {
		t.Errorf("parseCallbackData() = %q %q %d %v", action, answer, id, ok)
	}
	if _, _, _, ok := parseCallbackData("garbage"); ok {
		t.Error("parseCallbackData() accepted garbage")
	}
}
