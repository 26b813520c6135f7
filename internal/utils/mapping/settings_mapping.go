package mapping

import (
	"strings"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/models"
)

// ToModelCompanySettings converts domain CompanySettings to the row shape.
func ToModelCompanySettings(d domain.CompanySettings) models.CompanySettings {
	return models.CompanySettings{
		ID:                1,
		CompanyName:       d.CompanyName,
		Address:           d.Address,
		TaxID:             d.TaxID,
		TaxRate:           d.TaxRate,
		BaseCurrencyCode:  d.BaseCurrencyCode,
		DisplayCurrencies: strings.Join(d.DisplayCurrencies, ","),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanySettings converts a company_settings row to the domain shape.
func ToDomainCompanySettings(m models.CompanySettings) domain.CompanySettings {
	var currencies []string
	if m.DisplayCurrencies != "" {
		currencies = strings.Split(m.DisplayCurrencies, ",")
	}
	return domain.CompanySettings{
		CompanyName:       m.CompanyName,
		Address:           m.Address,
		TaxID:             m.TaxID,
		TaxRate:           m.TaxRate,
		BaseCurrencyCode:  m.BaseCurrencyCode,
		DisplayCurrencies: currencies,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAppSettings converts domain AppSettings to the row shape.
func ToModelAppSettings(d domain.AppSettings) models.AppSettings {
	return models.AppSettings{
		UserID:           d.UserID,
		Theme:            string(d.Theme),
		SidebarCollapsed: d.SidebarCollapsed,
		Language:         d.Language,
		DateFormat:       d.DateFormat,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAppSettings converts an app_settings row to the domain shape.
func ToDomainAppSettings(m models.AppSettings) domain.AppSettings {
	return domain.AppSettings{
		UserID:           m.UserID,
		Theme:            domain.Theme(m.Theme),
		SidebarCollapsed: m.SidebarCollapsed,
		Language:         m.Language,
		DateFormat:       m.DateFormat,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
