package xerrors

import "github.com/pkg/errors"

// Kind classifies an error the way callers are expected to react to it.
type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindPermissionDenied   Kind = "permission-denied"
	KindInvalidArgument    Kind = "invalid-argument"
	KindNotFound           Kind = "not-found"
	KindFailedPrecondition Kind = "failed-precondition"
	KindInternal           Kind = "internal"
)

// Error is a terminal request error whose Message is safe to show to end users.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func Unauthenticated(msg string) error    { return New(KindUnauthenticated, msg) }
func PermissionDenied(msg string) error   { return New(KindPermissionDenied, msg) }
func InvalidArgument(msg string) error    { return New(KindInvalidArgument, msg) }
func NotFound(msg string) error           { return New(KindNotFound, msg) }
func FailedPrecondition(msg string) error { return New(KindFailedPrecondition, msg) }

// KindOf reports the kind of err. Anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message for err, hiding internal details.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// Common messages shared by several operations.
var (
	ErrUserNotFound   = NotFound("User not found")
	ErrCouponNotFound = NotFound("Invalid coupon code")
)
