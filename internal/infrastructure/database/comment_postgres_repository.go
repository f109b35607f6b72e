// File: internal/infrastructure/database/comment_postgres_repository.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/domain/repository"
)

type pgxCommentRepository struct {
	db *pgxpool.Pool
}

// NewPgxCommentRepository creates a new instance of pgxCommentRepository.
func NewPgxCommentRepository(db *pgxpool.Pool) repository.CommentRepository {
	return &pgxCommentRepository{db: db}
}

func (r *pgxCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, content, blog_id, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	err := r.db.QueryRow(ctx, query,
		comment.ID, comment.Content, comment.BlogID, comment.AuthorID,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *pgxCommentRepository) FindByBlogID(ctx context.Context, blogID uuid.UUID) ([]models.Comment, error) {
	query := `
		SELECT id, content, blog_id, author_id, created_at
		FROM comments
		WHERE blog_id = $1
		ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.ID, &comment.Content, &comment.BlogID,
			&comment.AuthorID, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

var _ repository.CommentRepository = (*pgxCommentRepository)(nil)
