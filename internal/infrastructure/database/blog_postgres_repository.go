// File: internal/infrastructure/database/blog_postgres_repository.go
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

type pgxBlogRepository struct {
	db *pgxpool.Pool
}

// NewPgxBlogRepository creates a new instance of pgxBlogRepository.
func NewPgxBlogRepository(db *pgxpool.Pool) repository.BlogRepository {
	return &pgxBlogRepository{db: db}
}

func (r *pgxBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (id, title, content, photo_path, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		blog.ID, blog.Title, blog.Content, blog.PhotoPath, blog.AuthorID,
	).Scan(&blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (r *pgxBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	query := `
		SELECT id, title, content, photo_path, author_id, created_at, updated_at
		FROM blogs
		WHERE id = $1`
	blog := &models.Blog{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&blog.ID, &blog.Title, &blog.Content, &blog.PhotoPath,
		&blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find blog by ID: %w", err)
	}
	return blog, nil
}

func (r *pgxBlogRepository) FindAll(ctx context.Context) ([]models.Blog, error) {
	query := `
		SELECT id, title, content, photo_path, author_id, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(
			&blog.ID, &blog.Title, &blog.Content, &blog.PhotoPath,
			&blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blogs: %w", err)
	}
	return blogs, nil
}

func (r *pgxBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, content = $3, photo_path = $4, updated_at = now()
		WHERE id = $1`
	commandTag, err := r.db.Exec(ctx, query, blog.ID, blog.Title, blog.Content, blog.PhotoPath)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrBlogNotFound
	}
	return nil
}

func (r *pgxBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return domainErrors.ErrBlogNotFound
	}
	return nil
}

var _ repository.BlogRepository = (*pgxBlogRepository)(nil)
