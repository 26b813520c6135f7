package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/platform/config"
	"github.com/lancarbooks/lancar_backend/internal/utils"
)

// tokenService mints access and refresh tokens. Refresh tokens are opaque
// random strings; only their SHA-256 hash is stored.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserWriter
}

// NewTokenService creates the token service.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserWriter) *tokenService {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiry := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiry, nil
}

func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token")
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashSecret(raw), expiry); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token hash")
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return raw, expiry, nil
}
