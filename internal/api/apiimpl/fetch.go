package apiimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/media-share-bot/internal/api"
)

const accessTokenHeader = "x-access-token"

type request struct {
	method   string
	segments []string

	// auth attaches the provider's token. token, when set, is sent instead.
	auth  bool
	token string

	// payload is sent as JSON. body/contentType are used for anything else.
	payload     any
	body        io.Reader
	contentType string
}

// doFetch performs one call and decodes the JSON response into out. There is
// no retry: transport errors come back as-is and non-2xx responses as *api.Error.
func (c *Impl) doFetch(ctx context.Context, r request, out any) error {
	endpoint := c.baseURL.JoinPath(r.segments...)

	body := r.body
	contentType := r.contentType
	if r.payload != nil {
		b, err := json.Marshal(r.payload)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), body)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token := r.token
	if token == "" && r.auth && c.tokens != nil {
		token, err = c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read access token: %w", err)
		}
	}
	if token != "" {
		req.Header.Set(accessTokenHeader, token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Media API request failed",
			"method", r.method, "url", endpoint.String(), "request_id", requestID, "error", err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("Media API request",
		"method", r.method,
		"url", endpoint.String(),
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody api.ErrorBody
		// A body that is not the expected shape falls back to the status text.
		_ = json.Unmarshal(raw, &errBody)
		return api.NewError(resp.StatusCode, errBody)
	}

	if out == nil {
		if !json.Valid(raw) {
			return fmt.Errorf("decode response: invalid JSON")
		}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
