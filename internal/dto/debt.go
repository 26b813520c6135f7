package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to record a debt or receivable.
type CreateDebtRequest struct {
	DebtType     domain.DebtType `json:"debtType" binding:"required,oneof=PAYABLE RECEIVABLE"`
	Counterparty string          `json:"counterparty" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	Notes        string          `json:"notes"`
}

// UpdateDebtRequest is a full-record replace of a debt or receivable.
type UpdateDebtRequest struct {
	DebtType     domain.DebtType   `json:"debtType" binding:"required,oneof=PAYABLE RECEIVABLE"`
	Counterparty string            `json:"counterparty" binding:"required"`
	Amount       decimal.Decimal   `json:"amount" binding:"required"`
	DueDate      time.Time         `json:"dueDate" binding:"required"`
	Status       domain.DebtStatus `json:"status" binding:"required,oneof=UNPAID PARTIALLY_PAID PAID"`
	Notes        string            `json:"notes"`
}

// DebtResponse defines the data returned for a debt or receivable.
type DebtResponse struct {
	DebtID        string            `json:"debtID"`
	DebtType      domain.DebtType   `json:"debtType"`
	Counterparty  string            `json:"counterparty"`
	Amount        decimal.Decimal   `json:"amount"`
	DueDate       time.Time         `json:"dueDate"`
	Status        domain.DebtStatus `json:"status"`
	Notes         string            `json:"notes"`
	Overdue       bool              `json:"overdue"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToDebtResponse converts a domain.DebtReceivable to a DebtResponse DTO
func ToDebtResponse(d *domain.DebtReceivable, now time.Time) DebtResponse {
	return DebtResponse{
		DebtID:        d.DebtID,
		DebtType:      d.DebtType,
		Counterparty:  d.Counterparty,
		Amount:        d.Amount,
		DueDate:       d.DueDate,
		Status:        d.Status,
		Notes:         d.Notes,
		Overdue:       d.IsOverdue(now),
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToListDebtResponse converts a slice of domain.DebtReceivable to DTOs
func ToListDebtResponse(debts []domain.DebtReceivable, now time.Time) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i, d := range debts {
		res[i] = ToDebtResponse(&d, now)
	}
	return res
}

// ListDebtsParams defines query parameters for listing debts/receivables.
type ListDebtsParams struct {
	DebtType    string `form:"type" binding:"omitempty,oneof=PAYABLE RECEIVABLE"`
	Status      string `form:"status" binding:"omitempty,oneof=UNPAID PARTIALLY_PAID PAID"`
	OverdueOnly bool   `form:"overdueOnly,default=false"`
	Limit       int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset      int    `form:"offset,default=0" binding:"omitempty,min=0"`
}
