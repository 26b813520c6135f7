package repositories

import (
	"context"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction listing. Results are always ordered
// date ascending, then creation time ascending.
type TransactionFilter struct {
	AccountID   string                      // Optional account filter
	Direction   domain.TransactionDirection // Optional direction filter
	DateFrom    *time.Time                  // Inclusive lower bound
	DateTo      *time.Time                  // Inclusive upper bound
	Description string                      // Case-insensitive substring match
	Limit       int
	NextToken   *string // Cursor from a previous page
}

// TransactionReader defines read operations for the transaction log
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter in date-ascending
	// order, returning a token for the next page when more rows exist.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for the transaction log
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and applies the signed balance
	// delta to the referenced account's cached balance in one DB transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// SaveTransactions persists a batch (CSV import), applying per-account
	// balance deltas atomically.
	SaveTransactions(ctx context.Context, txns []domain.Transaction, balanceDeltas map[string]decimal.Decimal) error

	// UpdateTransaction full-record replaces a transaction, adjusting the cached
	// balances of the affected account(s) by the supplied deltas in one DB
	// transaction. Keys are account IDs (old and new may differ).
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDeltas map[string]decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
