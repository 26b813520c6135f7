package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountFilter narrows an account listing. Zero values mean "no filter".
type AccountFilter struct {
	AccountType domain.AccountType // Optional type filter
	ActiveOnly  bool               // Only active accounts
	Search      string             // Substring match on code or name
	Limit       int
	Offset      int
}

// AccountReader defines read operations for chart-of-accounts data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its unique account code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves accounts matching the filter, ordered by code.
	ListAccounts(ctx context.Context, filter AccountFilter) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Returns apperrors.ErrConflict when the
	// account is still referenced by transactions.
	DeleteAccount(ctx context.Context, accountID string) error

	// SetAccountActive flips the active flag.
	SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error
}

// AccountTransactionSupport defines operations used inside DB transactions
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks it within a transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// ApplyBalanceDeltaInTx adjusts the cached balance of an account within a transaction.
	ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
