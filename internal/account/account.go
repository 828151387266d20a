package account

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/orgball2608/media-share-bot/internal/api"
	"github.com/orgball2608/media-share-bot/internal/domain"
	"github.com/orgball2608/media-share-bot/internal/session"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	minPasswordLength = 5
)

type Opts struct {
	fx.In

	Users   api.UserClient
	Session *session.Session
	Logger  logger.Logger
}

type Service struct {
	users   api.UserClient
	session *session.Session
	logger  logger.Logger
}

func New(opts Opts) *Service {
	return &Service{
		users:   opts.Users,
		session: opts.Session,
		logger:  opts.Logger.WithComponent("Account"),
	}
}

func (s *Service) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return false, fmt.Errorf("%w: username must be at least %d characters", apperrors.ErrInvalidInput, minUsernameLength)
	}
	return s.users.CheckUsername(ctx, username)
}

// Register creates a user after checking that the name is free.
func (s *Service) Register(ctx context.Context, user domain.NewUser) (*domain.MutationResult, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	user.FullName = strings.TrimSpace(user.FullName)
	if err := validateNewUser(user); err != nil {
		return nil, err
	}

	available, err := s.CheckUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUsernameTaken, user.Username)
	}

	res, err := s.users.PostUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User registered", "username", user.Username, "user_id", res.UserID)
	return res, nil
}

// UpdateProfile changes the session user's profile and refreshes the cached user.
func (s *Service) UpdateProfile(ctx context.Context, update domain.UserUpdate) (domain.User, error) {
	current, err := s.session.RequireUser()
	if err != nil {
		return domain.User{}, err
	}

	update.Username = strings.TrimSpace(update.Username)
	update.Email = strings.TrimSpace(update.Email)
	update.FullName = strings.TrimSpace(update.FullName)
	if update.IsEmpty() {
		return domain.User{}, fmt.Errorf("%w: nothing to change", apperrors.ErrInvalidInput)
	}
	if update.Password != "" && len(update.Password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidInput, minPasswordLength)
	}
	if update.Email != "" {
		if _, err := mail.ParseAddress(update.Email); err != nil {
			return domain.User{}, fmt.Errorf("%w: email %q", apperrors.ErrInvalidInput, update.Email)
		}
	}
	if update.Username != "" && update.Username != current.Username {
		available, err := s.CheckUsername(ctx, update.Username)
		if err != nil {
			return domain.User{}, err
		}
		if !available {
			return domain.User{}, fmt.Errorf("%w: %s", apperrors.ErrUsernameTaken, update.Username)
		}
	}

	if _, err := s.users.PutUser(ctx, update); err != nil {
		return domain.User{}, err
	}

	user, err := s.session.Reload(ctx)
	if err != nil {
		return domain.User{}, err
	}
	s.session.NotifyUpdate()
	s.logger.Info("Profile updated", "user_id", user.UserID)
	return user, nil
}

func validateNewUser(user domain.NewUser) error {
	switch {
	case len(user.Username) < minUsernameLength:
		return fmt.Errorf("%w: username must be at least %d characters", apperrors.ErrInvalidInput, minUsernameLength)
	case len(user.Password) < minPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidInput, minPasswordLength)
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return fmt.Errorf("%w: email %q", apperrors.ErrInvalidInput, user.Email)
	}
	return nil
}
