package models

import "github.com/shopspring/decimal"

// BankAccount is the bank_accounts row shape.
type BankAccount struct {
	BankAccountID string          `db:"bank_account_id"`
	Name          string          `db:"name"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	HolderName    string          `db:"holder_name"`
	CurrencyCode  string          `db:"currency_code"`
	Balance       decimal.Decimal `db:"balance"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
