package repositories

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// BankAccountRepository defines operations for bank account data
type BankAccountRepository interface {
	// SaveBankAccount persists a new bank account.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error

	// FindBankAccountByID retrieves a specific bank account.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccounts retrieves bank accounts ordered by name.
	ListBankAccounts(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.BankAccount, error)

	// UpdateBankAccount full-record replaces a bank account.
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
}
