package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// CreateAPIKeyRequest defines the data needed to mint an API key.
type CreateAPIKeyRequest struct {
	Name      string     `json:"name" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// CreateAPIKeyResponse returns the plaintext secret exactly once, at creation.
type CreateAPIKeyResponse struct {
	KeyID     string     `json:"keyID"`
	Name      string     `json:"name"`
	Secret    string     `json:"secret"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// APIKeyResponse defines the data returned when listing keys; the secret and
// its hash are never included.
type APIKeyResponse struct {
	KeyID      string     `json:"keyID"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ToAPIKeyResponse converts a domain.APIKey to an APIKeyResponse DTO
func ToAPIKeyResponse(k *domain.APIKey) APIKeyResponse {
	return APIKeyResponse{
		KeyID:      k.KeyID,
		Name:       k.Name,
		LastUsedAt: k.LastUsedAt,
		ExpiresAt:  k.ExpiresAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
	}
}

// ToListAPIKeyResponse converts a slice of domain.APIKey to DTOs
func ToListAPIKeyResponse(keys []domain.APIKey) []APIKeyResponse {
	res := make([]APIKeyResponse, len(keys))
	for i, k := range keys {
		res[i] = ToAPIKeyResponse(&k)
	}
	return res
}
