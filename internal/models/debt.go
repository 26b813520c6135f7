package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType distinguishes payables from receivables.
type DebtType string

const (
	Payable    DebtType = "PAYABLE"
	Receivable DebtType = "RECEIVABLE"
)

// DebtStatus is the free-standing payment status enum.
type DebtStatus string

const (
	Unpaid        DebtStatus = "UNPAID"
	PartiallyPaid DebtStatus = "PARTIALLY_PAID"
	Paid          DebtStatus = "PAID"
)

// DebtReceivable is the debts_receivables row shape.
type DebtReceivable struct {
	DebtID       string          `db:"debt_id"`
	DebtType     DebtType        `db:"debt_type"`
	Counterparty string          `db:"counterparty"`
	Amount       decimal.Decimal `db:"amount"`
	DueDate      time.Time       `db:"due_date"`
	Status       DebtStatus      `db:"status"`
	Notes        string          `db:"notes"`
	AuditFields
}
