package services

import (
	"context"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken mints a short-lived JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken mints an opaque refresh token, stores its hash and
	// returns the plaintext with its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
