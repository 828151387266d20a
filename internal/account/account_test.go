package account

import (
	"context"
	"errors"
	"testing"

	mock_api "github.com/orgball2608/media-share-bot/internal/api/mocks"
	"github.com/orgball2608/media-share-bot/internal/domain"
	mock_token "github.com/orgball2608/media-share-bot/internal/repositories/token/mocks"
	"github.com/orgball2608/media-share-bot/internal/session"
	"github.com/orgball2608/media-share-bot/pkg/config"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	users   *mock_api.MockUserClient
	repo    *mock_token.MockRepository
	session *session.Session
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.MediaAPI.TokenKey = "userToken"

	f := &fixture{
		users: mock_api.NewMockUserClient(ctrl),
		repo:  mock_token.NewMockRepository(ctrl),
	}
	f.session = session.New(session.Opts{
		Users:  f.users,
		Tokens: session.NewTokenStore(session.TokenStoreOpts{Repo: f.repo, Config: cfg, Logger: logger.Nop()}),
		Logger: logger.Nop(),
	})
	f.svc = New(Opts{Users: f.users, Session: f.session, Logger: logger.Nop()})
	return f
}

func TestRegister(t *testing.T) {
	valid := domain.NewUser{Username: "alice", Password: "secret1", Email: "alice@example.com"}

	tests := []struct {
		name    string
		user    domain.NewUser
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name: "available",
			user: valid,
			setup: func(f *fixture) {
				f.users.EXPECT().CheckUsername(gomock.Any(), "alice").Return(true, nil)
				f.users.EXPECT().PostUser(gomock.Any(), valid).Return(&domain.MutationResult{UserID: 12}, nil)
			},
		},
		{
			name: "taken",
			user: valid,
			setup: func(f *fixture) {
				f.users.EXPECT().CheckUsername(gomock.Any(), "alice").Return(false, nil)
			},
			wantErr: apperrors.ErrUsernameTaken,
		},
		{
			name:    "bad email",
			user:    domain.NewUser{Username: "alice", Password: "secret1", Email: "nope"},
			setup:   func(*fixture) {},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:    "short password",
			user:    domain.NewUser{Username: "alice", Password: "abc", Email: "alice@example.com"},
			setup:   func(*fixture) {},
			wantErr: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.svc.Register(context.Background(), tt.user)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckUsernameTooShort(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.CheckUsername(context.Background(), "ab"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("CheckUsername() error = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateProfileReloadsUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.session.SetUser(domain.User{UserID: 3, Username: "bob"})

	update := domain.UserUpdate{Username: "bobby", FullName: "Bob B"}
	f.users.EXPECT().CheckUsername(ctx, "bobby").Return(true, nil)
	f.users.EXPECT().PutUser(ctx, update).Return(&domain.MutationResult{Message: "user data updated"}, nil)
	f.repo.EXPECT().Get(ctx, "userToken").Return("tok", nil)
	f.users.EXPECT().GetUserByToken(ctx, "tok").Return(&domain.User{UserID: 3, Username: "bobby", FullName: "Bob B"}, nil)

	user, err := f.svc.UpdateProfile(ctx, domain.UserUpdate{Username: " bobby", FullName: "Bob B"})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if user.Username != "bobby" {
		t.Errorf("UpdateProfile() = %+v", user)
	}
	if cur, _ := f.session.CurrentUser(); cur.Username != "bobby" {
		t.Errorf("session user = %+v, want the reloaded one", cur)
	}
	if f.session.Generation() != 1 {
		t.Error("profile update did not signal an update")
	}
}

func TestUpdateProfileKeepsOwnUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.session.SetUser(domain.User{UserID: 3, Username: "bob"})

	// No availability check for the name the user already has.
	f.users.EXPECT().PutUser(ctx, domain.UserUpdate{Username: "bob", Email: "b@example.com"}).Return(&domain.MutationResult{}, nil)
	f.repo.EXPECT().Get(ctx, "userToken").Return("tok", nil)
	f.users.EXPECT().GetUserByToken(ctx, "tok").Return(&domain.User{UserID: 3, Username: "bob"}, nil)

	if _, err := f.svc.UpdateProfile(ctx, domain.UserUpdate{Username: "bob", Email: "b@example.com"}); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateProfileRequiresLogin(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.UpdateProfile(context.Background(), domain.UserUpdate{FullName: "x"}); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Errorf("UpdateProfile() error = %v, want ErrNotLoggedIn", err)
	}
}
