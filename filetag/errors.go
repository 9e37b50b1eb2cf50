package filetag

import (
	"errors"
	"fmt"
	"io/fs"
)

type ErrorKind string

const (
	ErrIO       ErrorKind = "io"
	ErrSQL      ErrorKind = "sql"
	ErrStore    ErrorKind = "store"
	ErrInvalid  ErrorKind = "invalid"
	ErrNotFound ErrorKind = "not_found"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	base := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Path != "" {
		base = fmt.Sprintf("%s (path=%s)", base, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func New(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// PathError wraps a filesystem failure on path. Missing files get ErrNotFound.
func PathError(path, msg string, cause error) *Error {
	kind := ErrIO
	if errors.Is(cause, fs.ErrNotExist) {
		kind = ErrNotFound
	}
	return &Error{Kind: kind, Message: msg, Path: path, Cause: cause}
}

func InvalidError(msg string) *Error {
	return &Error{Kind: ErrInvalid, Message: msg}
}

func StoreError(msg string) *Error {
	return &Error{Kind: ErrStore, Message: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
