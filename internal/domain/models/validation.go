// File: internal/domain/models/validation.go
package models

import (
	"regexp"

	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the registration payload against the account rules:
// username 5-30 characters, name up to 30 characters, a well-formed email,
// and a password of 8-25 letters and digits containing at least one digit,
// one lowercase and one uppercase letter. confirmPassword must equal password.
func (r RegisterRequest) Validate() error {
	if len(r.Username) < 5 || len(r.Username) > 30 {
		return domainErrors.NewValidationError("username must be between 5 and 30 characters")
	}
	if r.Name == "" || len(r.Name) > 30 {
		return domainErrors.NewValidationError("name is required and must be at most 30 characters")
	}
	if !emailRegex.MatchString(r.Email) {
		return domainErrors.NewValidationError("email is not valid")
	}
	if !isValidPassword(r.Password) {
		return domainErrors.NewValidationError("password must be 8-25 letters and digits with at least one digit, one lowercase and one uppercase letter")
	}
	if r.ConfirmPassword != r.Password {
		return domainErrors.NewValidationError("confirmPassword does not match password")
	}
	return nil
}

// Validate checks the login payload shape. The username is required; the
// password must at least satisfy the account password rules, which avoids a
// pointless database lookup for passwords that could never have been set.
func (r LoginRequest) Validate() error {
	if len(r.Username) < 5 || len(r.Username) > 30 {
		return domainErrors.NewValidationError("username must be between 5 and 30 characters")
	}
	if !isValidPassword(r.Password) {
		return domainErrors.NewValidationError("password format is not valid")
	}
	return nil
}

// isValidPassword reports whether the password matches the account password
// pattern. Go's regexp has no lookahead, so the character classes are counted
// explicitly.
func isValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 25 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case 'A' <= char && char <= 'Z':
			hasUpper = true
		case 'a' <= char && char <= 'z':
			hasLower = true
		case '0' <= char && char <= '9':
			hasDigit = true
		default:
			// Only letters and digits are allowed.
			return false
		}
	}
	return hasUpper && hasLower && hasDigit
}

// Validate checks the blog creation payload.
func (r CreateBlogRequest) Validate() error {
	if r.Title == "" {
		return domainErrors.NewValidationError("title is required")
	}
	if r.Content == "" {
		return domainErrors.NewValidationError("content is required")
	}
	return nil
}

// Validate checks the comment creation payload.
func (r CreateCommentRequest) Validate() error {
	if r.Content == "" {
		return domainErrors.NewValidationError("content is required")
	}
	return nil
}
