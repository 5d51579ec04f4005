package service

import (
	"errors"
	"fmt"
)

// ErrNilDependency is returned by constructors given a nil collaborator.
var ErrNilDependency = errors.New("required dependency is nil")

// CardServiceError is a system fault raised while creating a card: a
// generator or the persistence gateway failed on an otherwise valid request.
// Callers must never report it as a client error.
type CardServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CardServiceError.
func (e *CardServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("card service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("card service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CardServiceError) Unwrap() error {
	return e.Err
}

// NewCardServiceError creates a new CardServiceError.
func NewCardServiceError(operation, message string, err error) *CardServiceError {
	return &CardServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsSystemError reports whether err is, or wraps, a CardServiceError.
func IsSystemError(err error) bool {
	var svcErr *CardServiceError
	return errors.As(err, &svcErr)
}
