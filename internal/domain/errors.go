package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrForeignKey        = errors.New("referenced record does not exist")
	ErrUnknown           = errors.New("unknown error")
)

// ValidationError malformed input. The message is safe to show to clients.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingFieldsError lists every field a request requires along with the ones it lacked.
type MissingFieldsError struct {
	Required []string
	Missing  []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
