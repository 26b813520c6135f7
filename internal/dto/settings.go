package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// UpdateCompanySettingsRequest replaces the company profile. Every field is
// required so a partial payload cannot silently blank the rest.
type UpdateCompanySettingsRequest struct {
	CompanyName       string          `json:"companyName" binding:"required"`
	Address           string          `json:"address"`
	TaxID             string          `json:"taxID"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	BaseCurrencyCode  string          `json:"baseCurrencyCode" binding:"required,len=3"`
	DisplayCurrencies []string        `json:"displayCurrencies" binding:"dive,len=3"`
}

// CompanySettingsResponse defines the data returned for company settings.
type CompanySettingsResponse struct {
	CompanyName       string          `json:"companyName"`
	Address           string          `json:"address"`
	TaxID             string          `json:"taxID"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	BaseCurrencyCode  string          `json:"baseCurrencyCode"`
	DisplayCurrencies []string        `json:"displayCurrencies"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// SaveAppSettingsRequest replaces the caller's presentation preferences.
// Unknown keys are rejected during binding, not merged.
type SaveAppSettingsRequest struct {
	Theme            domain.Theme `json:"theme" binding:"required,oneof=LIGHT DARK SYSTEM"`
	SidebarCollapsed bool         `json:"sidebarCollapsed"`
	Language         string       `json:"language" binding:"required"`
	DateFormat       string       `json:"dateFormat" binding:"required"`
}

// AppSettingsResponse defines the data returned for per-user settings.
type AppSettingsResponse struct {
	Theme            domain.Theme `json:"theme"`
	SidebarCollapsed bool         `json:"sidebarCollapsed"`
	Language         string       `json:"language"`
	DateFormat       string       `json:"dateFormat"`
}

// ToCompanySettingsResponse converts domain.CompanySettings to a DTO
func ToCompanySettingsResponse(s *domain.CompanySettings) CompanySettingsResponse {
	return CompanySettingsResponse{
		CompanyName:       s.CompanyName,
		Address:           s.Address,
		TaxID:             s.TaxID,
		TaxRate:           s.TaxRate,
		BaseCurrencyCode:  s.BaseCurrencyCode,
		DisplayCurrencies: s.DisplayCurrencies,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}

// ToAppSettingsResponse converts domain.AppSettings to a DTO
func ToAppSettingsResponse(s *domain.AppSettings) AppSettingsResponse {
	return AppSettingsResponse{
		Theme:            s.Theme,
		SidebarCollapsed: s.SidebarCollapsed,
		Language:         s.Language,
		DateFormat:       s.DateFormat,
	}
}
