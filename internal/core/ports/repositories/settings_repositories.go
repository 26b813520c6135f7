package repositories

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// SettingsRepository defines operations for company and per-user settings
type SettingsRepository interface {
	// GetCompanySettings retrieves the single company settings row.
	// Returns apperrors.ErrNotFound when never saved.
	GetCompanySettings(ctx context.Context) (*domain.CompanySettings, error)

	// SaveCompanySettings inserts or replaces the company settings row.
	SaveCompanySettings(ctx context.Context, settings domain.CompanySettings) error

	// GetAppSettings retrieves a user's presentation preferences.
	// Returns apperrors.ErrNotFound when the user has never saved any.
	GetAppSettings(ctx context.Context, userID string) (*domain.AppSettings, error)

	// SaveAppSettings inserts or replaces a user's presentation preferences.
	SaveAppSettings(ctx context.Context, settings domain.AppSettings) error
}
