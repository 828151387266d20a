package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/orgball2608/media-share-bot/internal/api"
	"github.com/orgball2608/media-share-bot/internal/repositories/token"
	"github.com/orgball2608/media-share-bot/pkg/config"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

type TokenStoreOpts struct {
	fx.In

	Repo   token.Repository
	Config *config.Config
	Logger logger.Logger
}

// TokenStore keeps the access token in durable storage under a fixed key
// and caches it in memory after the first read.
type TokenStore struct {
	repo   token.Repository
	key    string
	logger logger.Logger

	mu     sync.Mutex
	cached string
	loaded bool
}

var _ api.TokenProvider = (*TokenStore)(nil)

func NewTokenStore(opts TokenStoreOpts) *TokenStore {
	return newTokenStore(opts.Repo, opts.Config.MediaAPI.TokenKey, opts.Logger)
}

func newTokenStore(repo token.Repository, key string, log logger.Logger) *TokenStore {
	return &TokenStore{
		repo:   repo,
		key:    key,
		logger: log.WithComponent("TokenStore"),
	}
}

// Token returns the stored token, or "" when none is stored.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cached, nil
	}

	tok, err := s.repo.Get(ctx, s.key)
	if err != nil && !apperrors.IsNotFound(err) {
		return "", fmt.Errorf("load token %q: %w", s.key, err)
	}
	s.cached = tok
	s.loaded = true
	return tok, nil
}

func (s *TokenStore) Save(ctx context.Context, tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, s.key, tok); err != nil {
		return fmt.Errorf("save token %q: %w", s.key, err)
	}
	s.cached = tok
	s.loaded = true
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The cached copy is forgotten even if the delete fails, so a token
	// left in storage is not read back until the next start.
	s.cached = ""
	s.loaded = true
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete token %q: %w", s.key, err)
	}
	return nil
}
