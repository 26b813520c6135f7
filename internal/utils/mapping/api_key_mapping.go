package mapping

import (
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/models"
)

// ToModelAPIKey converts a domain APIKey to a model APIKey
func ToModelAPIKey(d domain.APIKey) models.APIKey {
	return models.APIKey{
		KeyID:      d.KeyID,
		UserID:     d.UserID,
		Name:       d.Name,
		KeyHash:    d.KeyHash,
		LastUsedAt: d.LastUsedAt,
		ExpiresAt:  d.ExpiresAt,
		RevokedAt:  d.RevokedAt,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainAPIKey converts a model APIKey to a domain APIKey
func ToDomainAPIKey(m models.APIKey) domain.APIKey {
	return domain.APIKey{
		KeyID:      m.KeyID,
		UserID:     m.UserID,
		Name:       m.Name,
		KeyHash:    m.KeyHash,
		LastUsedAt: m.LastUsedAt,
		ExpiresAt:  m.ExpiresAt,
		RevokedAt:  m.RevokedAt,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainAPIKeySlice converts a slice of model APIKeys to domain APIKeys
func ToDomainAPIKeySlice(ms []models.APIKey) []domain.APIKey {
	ds := make([]domain.APIKey, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAPIKey(m)
	}
	return ds
}
