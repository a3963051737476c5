// Package serrors attaches a semantic kind to errors. The HTTP layer turns the
// kind into a status code, and the job workers use it to choose between
// retrying, snoozing and canceling.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a kind sentinel. The name is what API clients see as the
// error code.
func NewKind(name string) Kind { return kind{s: name} }

var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden is returned when the caller may not perform the operation,
	// e.g. outreach to an opted-out address.
	ErrForbidden  = NewKind("FORBIDDEN")
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict covers duplicates and operations that clash with the
	// current state, such as starting an agent that is already running.
	ErrConflict = NewKind("CONFLICT")
	ErrInternal = NewKind("INTERNAL")
	ErrTimeout  = NewKind("TIMEOUT")
	// ErrUnavailable marks a dependency that is down or not configured.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited is returned by both our own limiters and upstream
	// services that throttle us.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error carries a kind, an optional cause and an optional client facing
// message. errors.Is and errors.As match both the kind and the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is With plus a cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error of kind k without message or cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// FromStatus classifies the error status of an upstream HTTP response. It
// must only be called for non-2xx statuses.
func FromStatus(status int, msgFmt string, args ...any) *Error {
	var k Kind
	switch {
	case status == http.StatusTooManyRequests:
		k = ErrRateLimited
	case status == http.StatusUnauthorized:
		k = ErrUnauthorized
	case status == http.StatusForbidden:
		k = ErrForbidden
	case status == http.StatusNotFound || status == http.StatusGone:
		k = ErrNotFound
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		k = ErrTimeout
	case status >= http.StatusInternalServerError:
		k = ErrUnavailable
	default:
		k = ErrBadRequest
	}

	return With(k, msgFmt, args...)
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// KindOf returns the kind carried by err, or nil. A bare kind sentinel is
// returned as is.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the outermost *Error in err's chain, or
// an empty string.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}

	return ""
}

// Permanent reports whether retrying the operation that produced err cannot
// succeed without a change on the caller's side.
func Permanent(err error) bool {
	switch KindOf(err) {
	case ErrBadRequest, ErrNotFound, ErrConflict, ErrForbidden, ErrUnauthorized:
		return true
	default:
		return false
	}
}
