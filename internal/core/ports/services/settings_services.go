package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// SettingsSvcFacade manages the single-row company profile and per-user
// presentation preferences.
type SettingsSvcFacade interface {
	// GetCompanySettings retrieves the company profile.
	GetCompanySettings(ctx context.Context) (*domain.CompanySettings, error)

	// UpdateCompanySettings replaces the company profile; admin only.
	UpdateCompanySettings(ctx context.Context, req dto.UpdateCompanySettingsRequest, userID string) (*domain.CompanySettings, error)

	// GetAppSettings retrieves the caller's preferences, falling back to
	// defaults when none are saved.
	GetAppSettings(ctx context.Context, userID string) (*domain.AppSettings, error)

	// SaveAppSettings replaces the caller's preferences.
	SaveAppSettings(ctx context.Context, userID string, req dto.SaveAppSettingsRequest) (*domain.AppSettings, error)
}
