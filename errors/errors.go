package errors

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNotAccessible   = errors.New("not accessible")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAPIError        = errors.New("api error")
	ErrIOError         = errors.New("io error")
	ErrConfig          = errors.New("config error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

// NewAPIError reports a provider failure. The cause stays reachable through errors.As.
func NewAPIError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrAPIError,
		msg:        msg,
		cause:      cause,
	}
}

func NewIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIOError,
		msg:        msg,
		cause:      cause,
	}
}

func NewConfigError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrConfig,
		msg:        msg,
		cause:      cause,
	}
}

// NewNotFoundError and NewNotAccessibleError never carry a cause,
// so upstream error details do not reach the caller.
func NewNotFoundError(msg string) error {
	return &wrapError{underlying: ErrNotFound, msg: msg}
}

func NewNotAccessibleError(msg string) error {
	return &wrapError{underlying: ErrNotAccessible, msg: msg}
}

func NewConflictError(msg string) error {
	return &wrapError{underlying: ErrConflict, msg: msg}
}

func NewInvalidArgumentError(msg string) error {
	return &wrapError{underlying: ErrInvalidArgument, msg: msg}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
