// File: internal/domain/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

var (
	// Generic errors
	ErrInternal   = errors.New("internal server error")
	ErrValidation = errors.New("invalid request")
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden")

	// Authentication errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("this email is already registered")
	ErrUsernameExists = errors.New("this username is not available")

	// Blog errors
	ErrBlogNotFound    = errors.New("blog not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// NewValidationError wraps ErrValidation with a field-specific message so the
// HTTP layer can classify it as a 400 while keeping the detail for the client.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// IsNotFound reports whether the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrBlogNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}

// IsConflict reports whether the error is a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailExists) ||
		errors.Is(err, ErrUsernameExists)
}

// IsUnauthorized reports whether the error maps to a 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// IsForbidden reports whether the error maps to a 403.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsBadRequest reports whether the error is a validation failure.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrValidation)
}
