package domain

import "github.com/shopspring/decimal"

// CompanySettings is the single-row company profile used across reports.
type CompanySettings struct {
	CompanyName       string          `json:"companyName"`
	Address           string          `json:"address"`
	TaxID             string          `json:"taxID"`   // NPWP or equivalent
	TaxRate           decimal.Decimal `json:"taxRate"` // Fraction, e.g. 0.005 for 0.5%
	BaseCurrencyCode  string          `json:"baseCurrencyCode"`
	DisplayCurrencies []string        `json:"displayCurrencies"` // Codes refreshed against the base
	AuditFields
}

// Theme is a user presentation preference.
type Theme string

const (
	ThemeLight  Theme = "LIGHT"
	ThemeDark   Theme = "DARK"
	ThemeSystem Theme = "SYSTEM"
)

// AppSettings holds per-user presentation preferences. The set of fields is
// closed: unknown keys in a settings payload are rejected, not merged.
type AppSettings struct {
	UserID           string `json:"userID"` // Primary key, FK -> users.user_id
	Theme            Theme  `json:"theme"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	Language         string `json:"language"`   // BCP 47 tag, e.g. "id", "en"
	DateFormat       string `json:"dateFormat"` // e.g. "02/01/2006"
	AuditFields
}

// DefaultAppSettings returns the settings served before a user has saved any.
func DefaultAppSettings(userID string) AppSettings {
	return AppSettings{
		UserID:           userID,
		Theme:            ThemeSystem,
		SidebarCollapsed: false,
		Language:         "id",
		DateFormat:       "02/01/2006",
	}
}
