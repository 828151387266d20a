package apiimpl

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/orgball2608/media-share-bot/internal/domain"
	apperrors "github.com/orgball2608/media-share-bot/pkg/errors"
)

func (c *Impl) GetMedia(ctx context.Context, fileID int) (*domain.Media, error) {
	var out domain.Media
	err := c.doFetch(ctx, request{
		method:   http.MethodGet,
		segments: []string{"media", strconv.Itoa(fileID)},
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "getMedia")
	}
	return &out, nil
}

func (c *Impl) PostMedia(ctx context.Context, upload domain.Upload) (*domain.MutationResult, error) {
	if len(upload.Data) == 0 {
		return nil, apperrors.Wrap(fmt.Errorf("%w: empty file", apperrors.ErrInvalidInput), "postMedia")
	}

	body, contentType, err := multipartBody(upload)
	if err != nil {
		return nil, apperrors.Wrap(err, "postMedia")
	}

	var out domain.MutationResult
	err = c.doFetch(ctx, request{
		method:      http.MethodPost,
		segments:    []string{"media"},
		auth:        true,
		body:        body,
		contentType: contentType,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "postMedia")
	}
	return &out, nil
}

func (c *Impl) PutMedia(ctx context.Context, fileID int, update domain.MediaUpdate) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodPut,
		segments: []string{"media", strconv.Itoa(fileID)},
		auth:     true,
		payload:  update,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "putMedia")
	}
	return &out, nil
}

func (c *Impl) DeleteMedia(ctx context.Context, fileID int) (*domain.MutationResult, error) {
	var out domain.MutationResult
	err := c.doFetch(ctx, request{
		method:   http.MethodDelete,
		segments: []string{"media", strconv.Itoa(fileID)},
		auth:     true,
	}, &out)
	if err != nil {
		return nil, apperrors.Wrap(err, "deleteMedia")
	}
	return &out, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func multipartBody(upload domain.Upload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", upload.Title); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("description", upload.Description); err != nil {
		return nil, "", err
	}

	filename := upload.Filename
	if filename == "" {
		filename = "upload"
	}

	// The server derives media_type from the part's Content-Type.
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", http.DetectContentType(upload.Data))
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
