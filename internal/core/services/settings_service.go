package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// settingsService manages the single-row company profile and per-user
// presentation preferences.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
	currencyRepo portsrepo.CurrencyRepository
}

// NewSettingsService creates the settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, currencyRepo portsrepo.CurrencyRepository, userRepo portsrepo.UserReader) *settingsService {
	return &settingsService{
		BaseService:  BaseService{UserRepo: userRepo},
		settingsRepo: settingsRepo,
		currencyRepo: currencyRepo,
	}
}

func (s *settingsService) GetCompanySettings(ctx context.Context) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.GetCompanySettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get company settings")
		}
		return nil, err
	}
	return settings, nil
}

// UpdateCompanySettings replaces the whole profile. Currency codes must
// exist in the catalogue; admin only.
func (s *settingsService) UpdateCompanySettings(ctx context.Context, req dto.UpdateCompanySettingsRequest, userID string) (*domain.CompanySettings, error) {
	if err := s.RequireAdmin(ctx, userID); err != nil {
		return nil, err
	}
	if req.TaxRate.IsNegative() {
		return nil, fmt.Errorf("tax rate cannot be negative: %w", apperrors.ErrValidation)
	}
	for _, code := range append([]string{req.BaseCurrencyCode}, req.DisplayCurrencies...) {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("unknown currency code %q: %w", code, apperrors.ErrValidation)
			}
			return nil, err
		}
	}

	now := time.Now()
	settings := domain.CompanySettings{
		CompanyName:       req.CompanyName,
		Address:           req.Address,
		TaxID:             req.TaxID,
		TaxRate:           req.TaxRate,
		BaseCurrencyCode:  req.BaseCurrencyCode,
		DisplayCurrencies: req.DisplayCurrencies,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if existing, err := s.settingsRepo.GetCompanySettings(ctx); err == nil {
		settings.CreatedAt = existing.CreatedAt
		settings.CreatedBy = existing.CreatedBy
	}

	if err := s.settingsRepo.SaveCompanySettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save company settings")
		return nil, err
	}

	s.LogInfo(ctx, "Company settings updated")
	return &settings, nil
}

// GetAppSettings returns the caller's saved preferences, or the defaults
// when nothing was ever saved.
func (s *settingsService) GetAppSettings(ctx context.Context, userID string) (*domain.AppSettings, error) {
	settings, err := s.settingsRepo.GetAppSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultAppSettings(userID)
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to get app settings")
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) SaveAppSettings(ctx context.Context, userID string, req dto.SaveAppSettingsRequest) (*domain.AppSettings, error) {
	now := time.Now()
	settings := domain.AppSettings{
		UserID:           userID,
		Theme:            req.Theme,
		SidebarCollapsed: req.SidebarCollapsed,
		Language:         req.Language,
		DateFormat:       req.DateFormat,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.settingsRepo.SaveAppSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save app settings", slog.String("target_user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "App settings saved")
	return &settings, nil
}
