// Package apperr carries the domain failure taxonomy. Every validation
// or lookup failure raised by the services is one of these kinds; the
// HTTP layer maps kinds to status codes in one place.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindForbidden
	KindValidation
	KindConflict
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Kind() Kind    { return e.kind }

func NotFound(format string, args ...any) error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) error {
	return &Error{kind: KindForbidden, msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &Error{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind, or KindUnknown for infrastructure
// errors that should surface as internal faults.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind()
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
