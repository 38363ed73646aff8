package model

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can pick a recovery path.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindNotFound
	KindValidation
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Error is a classified failure of a backend or domain operation.
type Error struct {
	Kind Kind
	Op   string // e.g. "get profile"
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same Kind, so sentinel comparisons like
// errors.Is(err, ErrNotFound) work through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNetwork      = &Error{Kind: KindNetwork}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
)

// E builds a classified error.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// NotFoundf returns a KindNotFound error.
func NotFoundf(op, format string, args ...any) *Error {
	return E(KindNotFound, op, fmt.Errorf(format, args...))
}

// Validationf returns a KindValidation error.
func Validationf(op, format string, args ...any) *Error {
	return E(KindValidation, op, fmt.Errorf(format, args...))
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsRetryable reports whether a failed send should go to the retry queue.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindNetwork, KindUnknown:
		return err != nil
	default:
		return false
	}
}

// Detail returns the message of the first *Error's cause, without the
// operation prefix, for showing to the user.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
