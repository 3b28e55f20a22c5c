package errors

import (
	e "errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
//
// The wrapped error can still be inspected with IsNotFound and friends.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(err error) error {
	return notFound{fmt.Sprintf("Not found: %v", err)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var nf notFound
	return e.As(err, &nf)
}

type alreadyExists struct {
	message string
}

// NewAlreadyExists creates an error for an item that cannot be created
// because it is already present.
func NewAlreadyExists(s string, v ...interface{}) error {
	return alreadyExists{fmt.Sprintf("Already exists: "+s, v...)}
}

func (a alreadyExists) Error() string {
	return a.message
}

// IsAlreadyExists checks if the given error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	var ae alreadyExists
	return e.As(err, &ae)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
//
// Validation errors are used for malformed records
// as well as for invalid arguments.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	var ve validationError
	return e.As(err, &ve)
}

type conflict struct {
	message string
}

// NewConflict creates an error for an update against a stale version.
func NewConflict(msg string, v ...interface{}) error {
	return conflict{fmt.Sprintf(msg, v...)}
}

func (c conflict) Error() string {
	return c.message
}

// IsConflict checks if the given error is a version conflict.
func IsConflict(err error) bool {
	var c conflict
	return e.As(err, &c)
}
