package roomblock

import (
	"errors"
	"fmt"
)

// Error kinds reported by lifecycle operations. Every failure carries a kind
// plus a human-readable message so callers can render something meaningful.
const (
	KindValidation   = "validationError"
	KindInvalidState = "invalidStateError"
	KindNotFound     = "notFoundError"
	KindRemote       = "remoteError"
)

// BlockError is the typed error returned by all lifecycle operations.
type BlockError struct {
	Kind    string
	Message string
	Err     error
}

func (e *BlockError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed input, rejected before any remote call.
func NewValidationError(format string, args ...interface{}) error {
	return &BlockError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidStateError reports an operation forbidden by the current room or
// block status.
func NewInvalidStateError(format string, args ...interface{}) error {
	return &BlockError{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports a missing block or room.
func NewNotFoundError(format string, args ...interface{}) error {
	return &BlockError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewRemoteError wraps a repository failure. Surfaced verbatim; the service
// never retries.
func NewRemoteError(msg string, err error) error {
	return &BlockError{Kind: KindRemote, Message: msg, Err: err}
}

// ErrorKind extracts the kind from an error, or "" for untyped errors.
func ErrorKind(err error) string {
	var be *BlockError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return ErrorKind(err) == KindValidation }

// IsInvalidState reports whether err is a state machine violation.
func IsInvalidState(err error) bool { return ErrorKind(err) == KindInvalidState }

// IsNotFound reports whether err is a missing block or room.
func IsNotFound(err error) bool { return ErrorKind(err) == KindNotFound }
