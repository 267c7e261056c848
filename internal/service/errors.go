package service

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a requested record does not exist, or that a
// task exists but is owned by a different user. The two cases are never
// distinguished.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func notFoundf(format string, args ...any) error {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err classifies as a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// DuplicateError reports that a write would violate a uniqueness invariant
// (username, email, category name, tag name).
type DuplicateError struct {
	msg string
}

func (e *DuplicateError) Error() string { return e.msg }

func duplicatef(format string, args ...any) error {
	return &DuplicateError{msg: fmt.Sprintf(format, args...)}
}

// IsDuplicate reports whether err classifies as a DuplicateError.
func IsDuplicate(err error) bool {
	var d *DuplicateError
	return errors.As(err, &d)
}

// ErrInvalidCredentials is returned by Authenticate for both an unknown
// username and a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")
