// Package apperror defines the error taxonomy every public service operation
// resolves remote and caller failures into. Low-level errors never cross a
// service boundary unwrapped.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidArgument   Kind = "INVALID_ARGUMENT"
	KindNotFound          Kind = "NOT_FOUND"
	KindRemoteUnavailable Kind = "REMOTE_UNAVAILABLE"
	KindTimeout           Kind = "TIMEOUT"
	KindIngestFailed      Kind = "INGEST_FAILED"
	KindGenerationFailed  Kind = "GENERATION_FAILED"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func RemoteUnavailable(message string, err error) *Error {
	return &Error{Kind: KindRemoteUnavailable, Message: message, Err: err}
}

func Timeout(format string, args ...interface{}) *Error {
	return &Error{Kind: KindTimeout, Message: fmt.Sprintf(format, args...)}
}

func IngestFailed(message string) *Error {
	return &Error{Kind: KindIngestFailed, Message: message}
}

func GenerationFailed(message string, err error) *Error {
	return &Error{Kind: KindGenerationFailed, Message: message, Err: err}
}

// KindOf reports the taxonomy kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
