package repositories

import (
	"context"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// APIKeyRepository defines operations for API key data
type APIKeyRepository interface {
	// SaveAPIKey persists a new API key (hash only).
	SaveAPIKey(ctx context.Context, key domain.APIKey) error

	// FindAPIKeyByHash retrieves a key by the SHA-256 hash of its secret.
	FindAPIKeyByHash(ctx context.Context, keyHash string) (*domain.APIKey, error)

	// ListAPIKeys retrieves the keys owned by a user, newest first.
	ListAPIKeys(ctx context.Context, userID string) ([]domain.APIKey, error)

	// RevokeAPIKey marks a key revoked. Revoked keys no longer authenticate.
	RevokeAPIKey(ctx context.Context, keyID string, revokedAt time.Time) error

	// TouchLastUsed records when a key last authenticated a request.
	TouchLastUsed(ctx context.Context, keyID string, usedAt time.Time) error
}
