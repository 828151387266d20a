package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/orgball2608/media-share-bot/internal/api"
	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Auth   api.AuthClient
	Users  api.UserClient
	Tokens *TokenStore
	Logger logger.Logger
}

// Session is the process-wide login state plus the update signal that tells
// cached lists to refetch.
type Session struct {
	auth   api.AuthClient
	users  api.UserClient
	tokens *TokenStore
	logger logger.Logger

	mu          sync.RWMutex
	user        *domain.User
	loggedIn    bool
	generation  uint64
	nextSubID   uint64
	subscribers map[uint64]chan struct{}
}

func New(opts Opts) *Session {
	return &Session{
		auth:        opts.Auth,
		users:       opts.Users,
		tokens:      opts.Tokens,
		logger:      opts.Logger.WithComponent("Session"),
		subscribers: make(map[uint64]chan struct{}),
	}
}

// Login authenticates, persists the token and marks the session logged in.
// Login, Restore and Logout signal an update.
func (s *Session) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return domain.User{}, fmt.Errorf("%w: username and password are required", apperrors.ErrInvalidInput)
	}

	res, err := s.auth.PostLogin(ctx, creds)
	if err != nil {
		return domain.User{}, err
	}
	if res.Token == "" {
		return domain.User{}, fmt.Errorf("login response for %q carried no token", creds.Username)
	}
	if err := s.tokens.Save(ctx, res.Token); err != nil {
		return domain.User{}, err
	}

	s.setUser(res.User)
	s.NotifyUpdate()
	s.logger.Info("Logged in", "username", res.User.Username, "user_id", res.User.UserID)
	return res.User, nil
}

// Restore validates a stored token and, when the API accepts it, logs the
// session in as its owner. A rejected token is discarded.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	tok, err := s.tokens.Token(ctx)
	if err != nil {
		return false, err
	}
	if tok == "" {
		s.logger.Info("No stored token, staying logged out")
		return false, nil
	}

	user, err := s.users.GetUserByToken(ctx, tok)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.logger.Warn("Stored token rejected, discarding it", "error", err)
			s.clearUser()
			return false, s.tokens.Clear(ctx)
		}
		return false, err
	}

	s.setUser(*user)
	s.NotifyUpdate()
	s.logger.Info("Session restored", "username", user.Username, "user_id", user.UserID)
	return true, nil
}

// Reload refetches the session user with the stored token.
func (s *Session) Reload(ctx context.Context) (domain.User, error) {
	tok, err := s.tokens.Token(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if tok == "" {
		return domain.User{}, apperrors.ErrNotLoggedIn
	}
	user, err := s.users.GetUserByToken(ctx, tok)
	if err != nil {
		return domain.User{}, err
	}
	s.setUser(*user)
	return *user, nil
}

func (s *Session) Logout(ctx context.Context) error {
	s.clearUser()
	s.NotifyUpdate()
	if err := s.tokens.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("Logged out")
	return nil
}

func (s *Session) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loggedIn || s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// RequireUser is CurrentUser with ErrNotLoggedIn for the logged-out case.
func (s *Session) RequireUser() (domain.User, error) {
	user, ok := s.CurrentUser()
	if !ok {
		return domain.User{}, apperrors.ErrNotLoggedIn
	}
	return user, nil
}

func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// SetUser replaces the cached user, e.g. after a profile update.
func (s *Session) SetUser(user domain.User) {
	s.setUser(user)
}

// Generation counts update signals since start.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// NotifyUpdate signals every subscriber that cached lists are stale. Signals
// coalesce: a subscriber that has not drained its channel sees one pending signal.
func (s *Session) NotifyUpdate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers for update signals. The returned func unsubscribes.
func (s *Session) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan struct{}, 1)
	s.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
		})
	}
}

func (s *Session) setUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.loggedIn = true
}

func (s *Session) clearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.loggedIn = false
}
