// File: internal/infrastructure/database/refresh_token_postgres_repository.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/domain/repository"
)

type pgxRefreshTokenRepository struct {
	db *pgxpool.Pool
}

// NewPgxRefreshTokenRepository creates a new instance of pgxRefreshTokenRepository.
func NewPgxRefreshTokenRepository(db *pgxpool.Pool) repository.RefreshTokenRepository {
	return &pgxRefreshTokenRepository{db: db}
}

func (r *pgxRefreshTokenRepository) Upsert(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	// user_id is the primary key, so there is at most one ledger entry per
	// user and the upsert is a plain last-write-wins replace.
	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET token_hash = EXCLUDED.token_hash, updated_at = now()`
	if _, err := r.db.Exec(ctx, query, userID, tokenHash); err != nil {
		return fmt.Errorf("failed to upsert refresh token: %w", err)
	}
	return nil
}

func (r *pgxRefreshTokenRepository) FindByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) (*models.RefreshToken, error) {
	query := `
		SELECT user_id, token_hash, updated_at
		FROM refresh_tokens
		WHERE user_id = $1 AND token_hash = $2`
	token := &models.RefreshToken{}
	err := r.db.QueryRow(ctx, query, userID, tokenHash).Scan(
		&token.UserID, &token.TokenHash, &token.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return token, nil
}

func (r *pgxRefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	// Not checking RowsAffected: logout with an already-deleted token is a
	// no-op, not an error.
	if _, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

var _ repository.RefreshTokenRepository = (*pgxRefreshTokenRepository)(nil)
