package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// BankAccountSvcFacade manages the registered bank accounts.
type BankAccountSvcFacade interface {
	// GetBankAccountByID retrieves a specific bank account.
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccounts retrieves all registered bank accounts.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)

	// CreateBankAccount persists a new bank account.
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error)

	// UpdateBankAccount updates an existing bank account's details.
	UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error)

	// DeleteBankAccount removes a bank account.
	DeleteBankAccount(ctx context.Context, bankAccountID string, userID string) error
}
