package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its user-facing code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves accounts matching the given filters.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)

	// ExportAccountsCSV renders the filtered account list as CSV bytes.
	ExportAccountsCSV(ctx context.Context, params dto.ListAccountsParams) ([]byte, error)
}

// AccountWriterSvc defines write operations for the chart of accounts.
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// SetAccountActive toggles the active flag without deleting history.
	SetAccountActive(ctx context.Context, accountID string, isActive bool, userID string) (*domain.Account, error)

	// DeleteAccount removes an account; it fails with a conflict error when
	// transactions still reference it.
	DeleteAccount(ctx context.Context, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
