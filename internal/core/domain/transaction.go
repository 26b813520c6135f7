package domain

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

// Transaction represents a single dated monetary movement against one account.
// Amount is always positive; the direction together with the account type
// determines the sign applied in balance calculations.
type Transaction struct {
	TransactionID   string               `json:"transactionID"`   // Primary key (UUID)
	AccountID       string               `json:"accountID"`       // FK -> accounts.account_id (not null)
	TransactionDate time.Time            `json:"transactionDate"` // Date the movement occurred
	Amount          decimal.Decimal      `json:"amount"`          // Positive value
	Direction       TransactionDirection `json:"direction"`       // DEBIT or CREDIT
	Description     string               `json:"description"`     // Nullable
	AuditFields
}
