// File: internal/domain/models/token.go
package models

// TokenPair represents an access/refresh token pair issued for a session.
// Both tokens are delivered to the client as httpOnly cookies.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
