package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType distinguishes money the company owes from money owed to it.
type DebtType string

const (
	Payable    DebtType = "PAYABLE"
	Receivable DebtType = "RECEIVABLE"
)

// DebtStatus is a free-standing payment status. It is set explicitly by the
// user and is not derived from recorded payments.
type DebtStatus string

const (
	Unpaid        DebtStatus = "UNPAID"
	PartiallyPaid DebtStatus = "PARTIALLY_PAID"
	Paid          DebtStatus = "PAID"
)

// DebtReceivable is a payable or receivable obligation tracked separately
// from the transaction log.
type DebtReceivable struct {
	DebtID       string          `json:"debtID"` // Primary key (UUID)
	DebtType     DebtType        `json:"debtType"`
	Counterparty string          `json:"counterparty"` // Who owes / is owed
	Amount       decimal.Decimal `json:"amount"`       // Positive value
	DueDate      time.Time       `json:"dueDate"`
	Status       DebtStatus      `json:"status"`
	Notes        string          `json:"notes"`
	AuditFields
}

// IsOverdue reports whether the obligation is past due and not fully paid.
func (d DebtReceivable) IsOverdue(now time.Time) bool {
	return d.Status != Paid && d.DueDate.Before(now)
}
