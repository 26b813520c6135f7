package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/utils"
)

// apiKeyService manages machine credentials. The plaintext secret exists
// only in the create response; storage and lookup work on its SHA-256 hash.
type apiKeyService struct {
	BaseService
	apiKeyRepo portsrepo.APIKeyRepository
	now        func() time.Time
}

// NewAPIKeyService creates the API key service.
func NewAPIKeyService(apiKeyRepo portsrepo.APIKeyRepository, userRepo portsrepo.UserReader) *apiKeyService {
	return &apiKeyService{
		BaseService: BaseService{UserRepo: userRepo},
		apiKeyRepo:  apiKeyRepo,
		now:         time.Now,
	}
}

// CreateAPIKey mints a key for an admin caller.
func (s *apiKeyService) CreateAPIKey(ctx context.Context, req dto.CreateAPIKeyRequest, userID string) (*dto.CreateAPIKeyResponse, error) {
	if err := s.RequireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(s.now()) {
		return nil, fmt.Errorf("expiry is in the past: %w", apperrors.ErrValidation)
	}

	secret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate API key secret")
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	key := domain.APIKey{
		KeyID:     uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		KeyHash:   utils.HashSecret(secret),
		ExpiresAt: req.ExpiresAt,
		CreatedAt: s.now(),
	}

	if err := s.apiKeyRepo.SaveAPIKey(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to save API key", slog.String("key_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "API key created", slog.String("api_key_id", key.KeyID))
	return &dto.CreateAPIKeyResponse{
		KeyID:     key.KeyID,
		Name:      key.Name,
		Secret:    secret,
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
	}, nil
}

func (s *apiKeyService) ListAPIKeys(ctx context.Context, userID string) ([]domain.APIKey, error) {
	keys, err := s.apiKeyRepo.ListAPIKeys(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list API keys")
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	if keys == nil {
		return []domain.APIKey{}, nil
	}
	return keys, nil
}

// RevokeAPIKey disables a key. The caller must be an admin and own the key.
func (s *apiKeyService) RevokeAPIKey(ctx context.Context, keyID string, userID string) error {
	if err := s.RequireAdmin(ctx, userID); err != nil {
		return err
	}
	keys, err := s.apiKeyRepo.ListAPIKeys(ctx, userID)
	if err != nil {
		return err
	}
	owned := false
	for _, key := range keys {
		if key.KeyID == keyID {
			owned = true
			break
		}
	}
	if !owned {
		return apperrors.ErrNotFound
	}

	if err := s.apiKeyRepo.RevokeAPIKey(ctx, keyID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to revoke API key", slog.String("api_key_id", keyID))
		return err
	}

	s.LogInfo(ctx, "API key revoked", slog.String("api_key_id", keyID))
	return nil
}

// AuthenticateAPIKey resolves a presented secret to a usable key and records
// the use. Revoked and expired keys fail as unauthorized.
func (s *apiKeyService) AuthenticateAPIKey(ctx context.Context, secret string) (*domain.APIKey, error) {
	key, err := s.apiKeyRepo.FindAPIKeyByHash(ctx, utils.HashSecret(secret))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up API key")
		return nil, err
	}

	now := s.now()
	if !key.IsUsable(now) {
		return nil, apperrors.ErrUnauthorized
	}

	if err := s.apiKeyRepo.TouchLastUsed(ctx, key.KeyID, now); err != nil {
		// Authentication still succeeds; only the timestamp is lost.
		s.LogError(ctx, err, "Failed to record API key use", slog.String("api_key_id", key.KeyID))
	}

	return key, nil
}
