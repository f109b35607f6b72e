// File: internal/domain/models/blog.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog represents a blog post.
type Blog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	PhotoPath *string   `json:"photo_path,omitempty" db:"photo_path"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBlogRequest carries the payload of POST /blog.
type CreateBlogRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	PhotoPath *string `json:"photoPath,omitempty"`
}

// UpdateBlogRequest carries the payload of PUT /blog. Only the author of the
// blog may update it; nil fields are left unchanged.
type UpdateBlogRequest struct {
	ID      uuid.UUID `json:"id"`
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
}

// BlogResponse is the blog projection returned by API endpoints.
type BlogResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	PhotoPath *string   `json:"photo_path,omitempty"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts a Blog model to an API BlogResponse.
func (b *Blog) ToResponse() BlogResponse {
	return BlogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		PhotoPath: b.PhotoPath,
		AuthorID:  b.AuthorID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
