package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a movement.
type CreateTransactionRequest struct {
	AccountID       string                      `json:"accountID" binding:"required"`
	TransactionDate time.Time                   `json:"transactionDate" binding:"required"`
	Amount          decimal.Decimal             `json:"amount" binding:"required"`
	Direction       domain.TransactionDirection `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	Description     string                      `json:"description"`
}

// UpdateTransactionRequest is a full-record replace of a transaction.
type UpdateTransactionRequest struct {
	AccountID       string                      `json:"accountID" binding:"required"`
	TransactionDate time.Time                   `json:"transactionDate" binding:"required"`
	Amount          decimal.Decimal             `json:"amount" binding:"required"`
	Direction       domain.TransactionDirection `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	Description     string                      `json:"description"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                      `json:"transactionID"`
	AccountID       string                      `json:"accountID"`
	TransactionDate time.Time                   `json:"transactionDate"`
	Amount          decimal.Decimal             `json:"amount"`
	Direction       domain.TransactionDirection `json:"direction"`
	Description     string                      `json:"description"`
	CreatedAt       time.Time                   `json:"createdAt"`
	CreatedBy       string                      `json:"createdBy"`
	LastUpdatedAt   time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy   string                      `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		TransactionDate: txn.TransactionDate,
		Amount:          txn.Amount,
		Direction:       txn.Direction,
		Description:     txn.Description,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
		LastUpdatedAt:   txn.LastUpdatedAt,
		LastUpdatedBy:   txn.LastUpdatedBy,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID   string     `form:"accountID"`
	Direction   string     `form:"direction" binding:"omitempty,oneof=DEBIT CREDIT"`
	DateFrom    *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo      *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Description string     `form:"description"`
	Limit       int        `form:"limit,default=100" binding:"omitempty,min=1,max=1000"`
	NextToken   *string    `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ImportTransactionsResult summarises a CSV import.
type ImportTransactionsResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
