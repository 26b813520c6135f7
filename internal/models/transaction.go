package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether a transaction is a Debit or a Credit.
type TransactionDirection string

const (
	Debit  TransactionDirection = "DEBIT"
	Credit TransactionDirection = "CREDIT"
)

// Transaction is the transactions row shape.
type Transaction struct {
	TransactionID   string               `db:"transaction_id"`
	AccountID       string               `db:"account_id"`
	TransactionDate time.Time            `db:"transaction_date"`
	Amount          decimal.Decimal      `db:"amount"` // Positive value
	Direction       TransactionDirection `db:"direction"`
	Description     string               `db:"description"`
	AuditFields
}
