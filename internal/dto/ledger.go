package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerParams defines query parameters for the per-account ledger view.
type LedgerParams struct {
	DateFrom    *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo      *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Description string     `form:"description"`
}

// LedgerEntryResponse is a transaction with its running balance attached.
type LedgerEntryResponse struct {
	TransactionResponse
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerResponse is the per-account ledger view with the closing balance.
type LedgerResponse struct {
	AccountID      string                `json:"accountID"`
	AccountName    string                `json:"accountName"`
	AccountType    domain.AccountType    `json:"accountType"`
	Entries        []LedgerEntryResponse `json:"entries"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
}

// ToLedgerResponse converts a domain.LedgerView to a LedgerResponse DTO
func ToLedgerResponse(view *domain.LedgerView) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(view.Entries))
	for i, e := range view.Entries {
		entries[i] = LedgerEntryResponse{
			TransactionResponse: ToTransactionResponse(&e.Transaction),
			RunningBalance:      e.RunningBalance,
		}
	}
	return LedgerResponse{
		AccountID:      view.AccountID,
		AccountName:    view.AccountName,
		AccountType:    view.AccountType,
		Entries:        entries,
		ClosingBalance: view.ClosingBalance,
	}
}
