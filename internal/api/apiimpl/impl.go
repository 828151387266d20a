package apiimpl

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/orgball2608/media-share-bot/internal/api"
	"github.com/orgball2608/media-share-bot/pkg/config"
	"github.com/orgball2608/media-share-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Tokens api.TokenProvider
}

// Impl talks to the media REST API. One value serves every resource
// interface in package api.
type Impl struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     api.TokenProvider
	logger     logger.Logger
}

var (
	_ api.AuthClient      = (*Impl)(nil)
	_ api.UserClient      = (*Impl)(nil)
	_ api.MediaClient     = (*Impl)(nil)
	_ api.TagClient       = (*Impl)(nil)
	_ api.FavouriteClient = (*Impl)(nil)
	_ api.CommentClient   = (*Impl)(nil)
)

func New(opts Opts) (*Impl, error) {
	httpClient := &http.Client{Timeout: opts.Config.MediaAPI.Timeout}
	return NewWithClient(opts.Config.MediaAPI.BaseURL, httpClient, opts.Tokens, opts.Logger)
}

func NewWithClient(baseURL string, httpClient *http.Client, tokens api.TokenProvider, log logger.Logger) (*Impl, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media api base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid media api base url %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Impl{
		baseURL:    u,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     log.WithComponent("MediaAPI"),
	}, nil
}
