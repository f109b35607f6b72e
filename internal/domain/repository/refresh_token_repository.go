// File: internal/domain/repository/refresh_token_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
)

// RefreshTokenRepository is the server-side ledger of active refresh tokens.
// It holds at most one entry per user; issuing a new refresh token replaces
// the previous one, which immediately invalidates it for future refreshes.
type RefreshTokenRepository interface {
	// Upsert stores tokenHash as the current refresh token of the user,
	// replacing any existing entry.
	Upsert(ctx context.Context, userID uuid.UUID, tokenHash string) error

	// FindByUserAndHash returns the ledger entry for the user if its stored
	// hash equals tokenHash, or ErrNotFound.
	FindByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) (*models.RefreshToken, error)

	// DeleteByHash removes the ledger entry with the given token hash.
	// Deleting a hash that is not present is not an error.
	DeleteByHash(ctx context.Context, tokenHash string) error
}
