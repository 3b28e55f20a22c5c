package inkbook

import (
	"github.com/akeil/inkbook/internal/errors"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	return errors.Wrap(err, msg, v...)
}

// IsNotFound checks if the given error is a "not found" error,
// e.g. for a missing page or metadata file.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsAlreadyExists checks if the given error was caused by creating
// a notebook that already exists.
func IsAlreadyExists(err error) bool {
	return errors.IsAlreadyExists(err)
}

// IsMalformed checks if the given error is a validation error,
// e.g. for a metadata record that cannot be parsed.
func IsMalformed(err error) bool {
	return errors.IsValidationError(err)
}

// IsConflict checks if the given error was caused by a version mismatch
// when updating metadata.
func IsConflict(err error) bool {
	return errors.IsConflict(err)
}
