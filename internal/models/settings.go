package models

import "github.com/shopspring/decimal"

// CompanySettings is the single-row company_settings shape. DisplayCurrencies
// is stored as a comma-separated list of ISO codes.
type CompanySettings struct {
	ID                int             `db:"id"` // Always 1
	CompanyName       string          `db:"company_name"`
	Address           string          `db:"address"`
	TaxID             string          `db:"tax_id"`
	TaxRate           decimal.Decimal `db:"tax_rate"`
	BaseCurrencyCode  string          `db:"base_currency_code"`
	DisplayCurrencies string          `db:"display_currencies"`
	AuditFields
}

// AppSettings is the per-user app_settings row shape.
type AppSettings struct {
	UserID           string `db:"user_id"`
	Theme            string `db:"theme"`
	SidebarCollapsed bool   `db:"sidebar_collapsed"`
	Language         string `db:"language"`
	DateFormat       string `db:"date_format"`
	AuditFields
}
