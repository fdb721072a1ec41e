// Package apperr defines the value-carrying error taxonomy shared by the
// service layer. Handlers map a Kind to an HTTP status in one place instead
// of matching on message strings.
package apperr

import (
	"errors"
	"fmt"
	"time"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindConflict
	KindRateLimited
)

type Error struct {
	Kind    Kind
	Message string

	// RetryAfter is set only for KindRateLimited and carries the time left
	// on the block window.
	RetryAfter time.Duration
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func RateLimited(retryAfter time.Duration) *Error {
	seconds := int64(retryAfter.Seconds())
	return &Error{
		Kind:       KindRateLimited,
		Message:    fmt.Sprintf("too many failed login attempts, try again in %d seconds", seconds),
		RetryAfter: retryAfter,
	}
}

// KindOf reports the Kind carried by err, or KindInternal for errors that
// did not originate from this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
