package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	Name          string          `json:"name" binding:"required"`
	BankName      string          `json:"bankName" binding:"required"`
	AccountNumber string          `json:"accountNumber" binding:"required"`
	HolderName    string          `json:"holderName" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3"`
	Balance       decimal.Decimal `json:"balance"`
}

// UpdateBankAccountRequest is a full-record replace of a bank account.
type UpdateBankAccountRequest struct {
	Name          string          `json:"name" binding:"required"`
	BankName      string          `json:"bankName" binding:"required"`
	AccountNumber string          `json:"accountNumber" binding:"required"`
	HolderName    string          `json:"holderName" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	Name          string          `json:"name"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToBankAccountResponse converts a domain.BankAccount to a BankAccountResponse DTO
func ToBankAccountResponse(acc *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: acc.BankAccountID,
		Name:          acc.Name,
		BankName:      acc.BankName,
		AccountNumber: acc.AccountNumber,
		HolderName:    acc.HolderName,
		CurrencyCode:  acc.CurrencyCode,
		Balance:       acc.Balance,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListBankAccountResponse converts a slice of domain.BankAccount to DTOs
func ToListBankAccountResponse(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToBankAccountResponse(&acc)
	}
	return res
}
