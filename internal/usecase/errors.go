package usecase

import "fmt"

// The two business failure kinds of the API. Handlers map ValidationError to
// 400 and NotFoundError to 404; anything else is an internal error and must
// not leak details to clients.

// ValidationError means the caller supplied missing, malformed or
// out-of-bounds input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// NotFoundError means a referenced entity or rate does not exist.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func newNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}
