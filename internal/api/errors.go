package api

import (
	"errors"
	"net/http"
)

// Error is a non-success response from the media API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrorBody is the failure payload shape: {message?, error?}.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewError composes the message "<message>: <error>" when the body carries
// both, whichever one is present otherwise, and the status text when neither is.
func NewError(statusCode int, body ErrorBody) *Error {
	var msg string
	switch {
	case body.Message != "" && body.Error != "":
		msg = body.Message + ": " + body.Error
	case body.Message != "":
		msg = body.Message
	case body.Error != "":
		msg = body.Error
	default:
		msg = http.StatusText(statusCode)
	}
	return &Error{StatusCode: statusCode, Message: msg}
}

// StatusCode returns the HTTP status of the API error wrapped in err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
