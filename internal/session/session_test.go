package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/orgball2608/media-share-bot/internal/api"
	mock_api "github.com/orgball2608/media-share-bot/internal/api/mocks"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/internal/repositories/token"
	mock_token "github.com/orgball2608/media-share-bot/internal/repositories/token/mocks"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

const testKey = "userToken"

type fixture struct {
	auth    *mock_api.MockAuthClient
	users   *mock_api.MockUserClient
	repo    *mock_token.MockRepository
	session *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		auth:  mock_api.NewMockAuthClient(ctrl),
		users: mock_api.NewMockUserClient(ctrl),
		repo:  mock_token.NewMockRepository(ctrl),
	}
	f.session = New(Opts{
		Auth:   f.auth,
		Users:  f.users,
		Tokens: newTokenStore(f.repo, testKey, logger.Nop()),
		Logger: logger.Nop(),
	})
	return f
}

func TestLoginStoresTokenAndUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	creds := domain.Credentials{Username: "bob", Password: "pw"}

	f.auth.EXPECT().PostLogin(ctx, creds).Return(&domain.LoginResult{
		Message: "Logged in successfully",
		Token:   "tok-1",
		User:    domain.User{UserID: 3, Username: "bob"},
	}, nil)
	f.repo.EXPECT().Save(ctx, testKey, "tok-1").Return(nil)

	user, err := f.session.Login(ctx, creds)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.UserID != 3 {
		t.Errorf("Login() user = %+v", user)
	}
	if !f.session.IsLoggedIn() {
		t.Error("IsLoggedIn() = false after login")
	}
	got, ok := f.session.CurrentUser()
	if !ok || got.Username != "bob" {
		t.Errorf("CurrentUser() = %+v, %v", got, ok)
	}
	if f.session.Generation() != 1 {
		t.Error("login did not signal an update")
	}

	// Cached after save, so no repository read.
	tok, err := f.session.tokens.Token(ctx)
	if err != nil || tok != "tok-1" {
		t.Errorf("Token() = %q, %v", tok, err)
	}
}

func TestLoginFailureLeavesSessionLoggedOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	creds := domain.Credentials{Username: "bob", Password: "wrong"}

	f.auth.EXPECT().PostLogin(ctx, creds).Return(nil, &api.Error{StatusCode: http.StatusUnauthorized, Message: "Incorrect username/password"})

	if _, err := f.session.Login(ctx, creds); err == nil {
		t.Fatal("Login() expected error")
	}
	if f.session.IsLoggedIn() {
		t.Error("IsLoggedIn() = true after failed login")
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.session.Login(context.Background(), domain.Credentials{Username: "  "})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Login() error = %v, want ErrInvalidInput", err)
	}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture, ctx context.Context)
		wantOK   bool
		wantErr  bool
		loggedIn bool
	}{
		{
			name: "no stored token",
			setup: func(f *fixture, ctx context.Context) {
				f.repo.EXPECT().Get(ctx, testKey).Return("", token.ErrNotFound)
			},
		},
		{
			name: "valid token",
			setup: func(f *fixture, ctx context.Context) {
				f.repo.EXPECT().Get(ctx, testKey).Return("tok", nil)
				f.users.EXPECT().GetUserByToken(ctx, "tok").Return(&domain.User{UserID: 9, Username: "eve"}, nil)
			},
			wantOK:   true,
			loggedIn: true,
		},
		{
			name: "rejected token is cleared",
			setup: func(f *fixture, ctx context.Context) {
				f.repo.EXPECT().Get(ctx, testKey).Return("stale", nil)
				f.users.EXPECT().GetUserByToken(ctx, "stale").Return(nil, &api.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid token"})
				f.repo.EXPECT().Delete(ctx, testKey).Return(nil)
			},
		},
		{
			name: "server error keeps token",
			setup: func(f *fixture, ctx context.Context) {
				f.repo.EXPECT().Get(ctx, testKey).Return("tok", nil)
				f.users.EXPECT().GetUserByToken(ctx, "tok").Return(nil, &api.Error{StatusCode: http.StatusBadGateway, Message: "Bad Gateway"})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			tt.setup(f, ctx)

			ok, err := f.session.Restore(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Restore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Errorf("Restore() = %v, want %v", ok, tt.wantOK)
			}
			if f.session.IsLoggedIn() != tt.loggedIn {
				t.Errorf("IsLoggedIn() = %v, want %v", f.session.IsLoggedIn(), tt.loggedIn)
			}
		})
	}
}

func TestLogoutClearsTokenAndUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.session.SetUser(domain.User{UserID: 1})

	f.repo.EXPECT().Delete(ctx, testKey).Return(nil)

	if err := f.session.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := f.session.RequireUser(); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Errorf("RequireUser() error = %v, want ErrNotLoggedIn", err)
	}
	tok, err := f.session.tokens.Token(ctx)
	if err != nil || tok != "" {
		t.Errorf("Token() after logout = %q, %v", tok, err)
	}
}

func TestLogoutForgetsTokenWhenDeleteFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().Save(ctx, testKey, "tok").Return(nil)
	if err := f.session.tokens.Save(ctx, "tok"); err != nil {
		t.Fatal(err)
	}
	f.session.SetUser(domain.User{UserID: 1})

	f.repo.EXPECT().Delete(ctx, testKey).Return(errors.New("connection reset"))

	if err := f.session.Logout(ctx); err == nil {
		t.Fatal("Logout() expected the delete error")
	}
	if f.session.IsLoggedIn() {
		t.Error("IsLoggedIn() = true after logout")
	}
	// No further repository read is expected: the token stays forgotten.
	tok, err := f.session.tokens.Token(ctx)
	if err != nil || tok != "" {
		t.Errorf("Token() after failed delete = %q, %v, want empty", tok, err)
	}
}

func TestMissingTokenIsNotFound(t *testing.T) {
	if !apperrors.IsNotFound(token.ErrNotFound) {
		t.Error("token.ErrNotFound does not match ErrNotFound")
	}
	if !apperrors.IsNotFound(apperrors.Wrap(token.ErrNotFound, "getToken")) {
		t.Error("wrapped token.ErrNotFound does not match ErrNotFound")
	}
}

func TestNotifyUpdateSignalsSubscribers(t *testing.T) {
	f := newFixture(t)

	ch1, cancel1 := f.session.Subscribe()
	ch2, cancel2 := f.session.Subscribe()
	defer cancel2()

	f.session.NotifyUpdate()
	f.session.NotifyUpdate()

	if got := f.session.Generation(); got != 2 {
		t.Errorf("Generation() = %d, want 2", got)
	}

	for i, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d got no signal", i)
		}
		// Both notifications coalesce into one pending signal.
		select {
		case <-ch:
			t.Errorf("subscriber %d got a second signal", i)
		default:
		}
	}

	cancel1()
	cancel1()
	f.session.NotifyUpdate()
	select {
	case <-ch1:
		t.Error("unsubscribed channel still signalled")
	default:
	}
	select {
	case <-ch2:
	default:
		t.Error("remaining subscriber not signalled")
	}
}
