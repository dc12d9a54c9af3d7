package model

import "errors"

// ErrorKind classifies extraction failures.
type ErrorKind int

// Available ErrorKind values.
const (
	KindIO ErrorKind = iota
	KindNotFound
	KindPermissionDenied
	KindReadOnlyFS
	KindInvalidRange
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrIO               = errors.New("i/o failure")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrReadOnlyFS       = errors.New("read-only file system")
	ErrInvalidRange     = errors.New("invalid range")
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindReadOnlyFS:
		return "read-only file system"
	case KindInvalidRange:
		return "invalid range"
	default:
		return "i/o failure"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindReadOnlyFS:
		return ErrReadOnlyFS
	case KindInvalidRange:
		return ErrInvalidRange
	default:
		return ErrIO
	}
}

// Error is the failure payload of an extraction.
type Error struct {
	Kind    ErrorKind
	Message string
	// Path is the file or directory the failure refers to, if any.
	Path Path
	// Cause is the underlying system error, if any.
	Cause error
	// PartiallyCompleted is set when the target was written but the
	// source rewrite of a move failed afterwards.
	PartiallyCompleted bool
}

// NewError builds an *Error without an underlying cause.
func NewError(kind ErrorKind, path Path, message string) *Error {
	return &Error{Kind: kind, Path: path, Message: message}
}

// WrapError builds an *Error carrying the underlying cause.
func WrapError(kind ErrorKind, path Path, message string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel of this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}
