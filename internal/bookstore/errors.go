package bookstore

import (
	"errors"
	"fmt"

	"github.com/mrlokans/bookshelf/internal/validation"
)

// Kind distinguishes the failure modes a store reports to its callers.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
)

// Error is the only error type the store produces for request problems.
// Callers dispatch on Kind; ID is set for not-found errors, Field for
// validation errors tied to a single field.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	ID      string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works regardless of the message or id.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "book not found"}
)

// NewNotFoundError builds a not-found error that names the missing id.
func NewNotFoundError(id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("book with id %q not found", id),
		ID:      id,
	}
}

// NewValidationError builds a validation error from a violated rule.
func NewValidationError(field, reason string) *Error {
	rule := &validation.Error{Field: field, Reason: reason}
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed: " + rule.Error(),
		Field:   field,
	}
}

// FromValidation converts a validation rule failure. The rule error is
// flattened into the message rather than wrapped.
func FromValidation(err error) *Error {
	var rule *validation.Error
	if errors.As(err, &rule) {
		return NewValidationError(rule.Field, rule.Reason)
	}
	return &Error{Kind: KindValidation, Message: "validation failed: " + err.Error()}
}

// KindOf returns the kind of a store error, or "" for any other error.
func KindOf(err error) Kind {
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Kind
	}
	return ""
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
