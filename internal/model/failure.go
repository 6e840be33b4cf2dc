package model

import (
	"errors"
	"fmt"
)

// Failure is the typed error returned by services for every failed user action.
// Callers branch on Kind instead of inspecting error text.
type Failure struct {
	Kind FailureKind
	Op   string // operation that failed, e.g. "convert", "delete"
	Path string // file path involved, if any
	Err  error  // underlying cause
}

// NewFailure creates a failure of the given kind
func NewFailure(kind FailureKind, op, path string, err error) *Failure {
	return &Failure{Kind: kind, Op: op, Path: path, Err: err}
}

// Error implements the error interface
func (f *Failure) Error() string {
	msg := f.Kind.String()
	if f.Op != "" {
		msg = f.Op + ": " + msg
	}
	if f.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, f.Path)
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (f *Failure) Unwrap() error {
	return f.Err
}

// Message returns the underlying cause text without the kind/op prefix
func (f *Failure) Message() string {
	if f.Err == nil {
		return f.Kind.String()
	}
	return f.Err.Error()
}

// KindOf returns the failure kind carried by err, if any
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries a failure of the given kind
func IsKind(err error, kind FailureKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
