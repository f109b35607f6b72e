// File: internal/domain/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
)

// UserRepository defines the persistence operations for user records.
type UserRepository interface {
	// Create inserts a new user. When a uniqueness constraint is violated
	// concurrently (a race past the pre-checks), it returns ErrEmailExists or
	// ErrUsernameExists depending on the violated constraint.
	Create(ctx context.Context, user *models.User) error

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByUsername returns the user with the given username, or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
