package models

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

// Account is the chart_of_accounts row shape.
type Account struct {
	AccountID    string          `db:"account_id"`
	Code         string          `db:"code"` // Unique, sortable
	Name         string          `db:"name"`
	AccountType  AccountType     `db:"account_type"`
	CurrencyCode string          `db:"currency_code"`
	Description  string          `db:"description"`
	IsActive     bool            `db:"is_active"`
	Balance      decimal.Decimal `db:"balance"` // Cached display balance
	AuditFields
}
