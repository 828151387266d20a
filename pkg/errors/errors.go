package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrForbidden     = errors.New("forbidden")
)

// Error tags an underlying error with the operation that produced it.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap prefixes err with the call site, e.g. Wrap(err, "postMedia")
// reads "postMedia: <reason>". A nil err stays nil.
func Wrap(err error, callSite string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: callSite,
		Err:     err,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsNotLoggedIn(err error) bool {
	return errors.Is(err, ErrNotLoggedIn)
}
