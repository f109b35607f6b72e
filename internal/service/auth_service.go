// Package service contains the core business logic of the blog platform.
// It orchestrates operations between repositories and the token service to
// fulfill use cases such as registration, login, session refresh, and blog
// and comment management.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/syedsaim26/blog-platform/internal/domain/errors"
	"github.com/syedsaim26/blog-platform/internal/domain/models"
	"github.com/syedsaim26/blog-platform/internal/domain/repository"
)

// AuthService implements the register/login/logout/refresh session flow.
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     *TokenService
	logger           *zap.Logger
	bcryptCost       int
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	tokenService *TokenService,
	logger *zap.Logger,
	bcryptCost int,
) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
		logger:           logger,
		bcryptCost:       bcryptCost,
	}
}

// Register validates the payload, checks username/email uniqueness, persists
// the new user with a hashed password, and issues a token pair. The
// uniqueness pre-checks are race-prone; the database constraints back them
// up and surface as the same conflict errors.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, models.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, models.TokenPair{}, err
	}

	emailInUse, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, models.TokenPair{}, err
	}
	if emailInUse {
		return nil, models.TokenPair{}, domainErrors.ErrEmailExists
	}

	usernameInUse, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("Failed to check username existence", zap.Error(err))
		return nil, models.TokenPair{}, err
	}
	if usernameInUse {
		return nil, models.TokenPair{}, domainErrors.ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, models.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if !domainErrors.IsConflict(err) {
			s.logger.Error("Failed to create user", zap.Error(err))
		}
		return nil, models.TokenPair{}, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, models.TokenPair{}, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()), zap.String("username", user.Username))
	return user, pair, nil
}

// Login verifies the credentials and issues a token pair. Unknown usernames
// and wrong passwords produce the same ErrInvalidCredentials so a caller
// cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, models.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, models.TokenPair{}, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, models.TokenPair{}, domainErrors.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up user for login", zap.Error(err))
		return nil, models.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, models.TokenPair{}, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return user, pair, nil
}

// Logout removes the presented refresh token from the ledger. A missing or
// already-deleted token is not an error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refreshTokenRepo.DeleteByHash(ctx, HashToken(refreshToken)); err != nil {
		s.logger.Error("Failed to delete refresh token on logout", zap.Error(err))
		return err
	}
	return nil
}

// Refresh verifies the presented refresh token, checks it against the ledger
// entry of the decoded identity, and rotates the pair. A token that fails
// verification, or no longer matches the ledger (revoked or already
// rotated), yields ErrInvalidToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.User, models.TokenPair, error) {
	claims, err := s.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, models.TokenPair{}, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, models.TokenPair{}, fmt.Errorf("%w: malformed user id in claims", domainErrors.ErrInvalidToken)
	}

	if _, err := s.refreshTokenRepo.FindByUserAndHash(ctx, userID, HashToken(refreshToken)); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			// Either the session was logged out or the token was already
			// rotated; both mean the presented token is no longer honored.
			return nil, models.TokenPair{}, domainErrors.ErrInvalidToken
		}
		s.logger.Error("Failed to look up refresh token", zap.Error(err))
		return nil, models.TokenPair{}, err
	}

	// Rebuild the payload from the current user record rather than from the
	// old claims, so a refresh reflects the state of the account.
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, models.TokenPair{}, domainErrors.ErrInvalidToken
		}
		s.logger.Error("Failed to load user for refresh", zap.Error(err))
		return nil, models.TokenPair{}, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, models.TokenPair{}, err
	}
	return user, pair, nil
}

// issueTokens signs a fresh access/refresh pair and records the refresh
// token in the ledger, replacing any previous entry for the user.
func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (models.TokenPair, error) {
	accessToken, err := s.tokenService.SignAccessToken(user)
	if err != nil {
		s.logger.Error("Failed to sign access token", zap.Error(err))
		return models.TokenPair{}, err
	}
	refreshToken, err := s.tokenService.SignRefreshToken(user)
	if err != nil {
		s.logger.Error("Failed to sign refresh token", zap.Error(err))
		return models.TokenPair{}, err
	}
	if err := s.refreshTokenRepo.Upsert(ctx, user.ID, HashToken(refreshToken)); err != nil {
		s.logger.Error("Failed to store refresh token", zap.Error(err))
		return models.TokenPair{}, err
	}
	return models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
