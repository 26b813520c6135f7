package domain

import "github.com/shopspring/decimal"

// BankAccount represents a physical bank account held by the company.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"` // Primary key (UUID)
	Name          string          `json:"name"`          // Display name (e.g. "Operating Account")
	BankName      string          `json:"bankName"`      // e.g. "BCA"
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
