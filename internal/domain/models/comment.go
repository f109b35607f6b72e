// File: internal/domain/models/comment.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a blog post.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	BlogID    uuid.UUID `json:"blog_id" db:"blog_id"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateCommentRequest carries the payload of POST /comment.
type CreateCommentRequest struct {
	Content string    `json:"content"`
	BlogID  uuid.UUID `json:"blog"`
}
