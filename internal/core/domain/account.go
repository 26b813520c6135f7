package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents an entry in the chart of accounts.
// Balance is a cached display value maintained alongside transaction writes;
// it is last-writer-wins and not a source of truth for the ledger itself.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary key (UUID)
	Code         string          `json:"code"`         // Unique, sortable account code (e.g. "1-1001")
	Name         string          `json:"name"`         // User-defined name
	AccountType  AccountType     `json:"accountType"`  // ASSET, LIABILITY, etc.
	CurrencyCode string          `json:"currencyCode"` // FK -> currencies.code
	Description  string          `json:"description"`  // Nullable user description
	IsActive     bool            `json:"isActive"`     // Inactive accounts are excluded from totals
	Balance      decimal.Decimal `json:"balance"`      // Cached balance for display
	AuditFields
}
