package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// APIKeySvcFacade manages machine credentials for scheduled callers.
type APIKeySvcFacade interface {
	// CreateAPIKey mints a key and returns the plaintext secret exactly once.
	CreateAPIKey(ctx context.Context, req dto.CreateAPIKeyRequest, userID string) (*dto.CreateAPIKeyResponse, error)

	// ListAPIKeys retrieves the caller's keys without secrets.
	ListAPIKeys(ctx context.Context, userID string) ([]domain.APIKey, error)

	// RevokeAPIKey permanently disables a key.
	RevokeAPIKey(ctx context.Context, keyID string, userID string) error

	// AuthenticateAPIKey resolves a presented secret to a usable key, updating
	// its last-used timestamp.
	AuthenticateAPIKey(ctx context.Context, secret string) (*domain.APIKey, error)
}
