package core

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindConfig     Kind = "config"
	KindLoad       Kind = "load"
	KindCapability Kind = "capability"
	KindRetrieval  Kind = "retrieval"
	KindFilesystem Kind = "filesystem"
	KindInternal   Kind = "internal"
)

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrOutputDirInvalid = errors.New("output directory is not usable")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrAppNotFound      = errors.New("app not registered")
	ErrNoCapability     = errors.New("app exposes neither a generator nor a handler")
	ErrGenerateFailed   = errors.New("app generator reported failure")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrNotRegularFile   = errors.New("not a regular file")
	ErrPanic            = errors.New("app panicked")
)

type Error struct {
	Kind   Kind
	Op     string
	Path   string
	Status int
	Err    error
	Stack  []byte
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func FilesystemError(op, path string, err error) *Error {
	return &Error{Kind: KindFilesystem, Op: op, Path: path, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func StackOf(err error) []byte {
	var e *Error
	if errors.As(err, &e) {
		return e.Stack
	}
	return nil
}

// ExitCode is 0 for success and 1 for every failure kind.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
