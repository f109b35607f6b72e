// File: internal/domain/models/refresh_token.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the server-side ledger entry for the single active refresh
// token of a user. The token itself is stored as a SHA-256 hash; a presented
// token matches the ledger iff the hashes are equal.
type RefreshToken struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
