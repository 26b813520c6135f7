package repositories

import (
	"context"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// DebtFilter narrows a debt/receivable listing. Zero values mean "no filter".
type DebtFilter struct {
	DebtType    domain.DebtType   // Optional PAYABLE/RECEIVABLE filter
	Status      domain.DebtStatus // Optional status filter
	OverdueAsOf *time.Time        // Only items due before this time and not PAID
	Limit       int
	Offset      int
}

// DebtRepository defines operations for debt/receivable data
type DebtRepository interface {
	// SaveDebt persists a new debt or receivable.
	SaveDebt(ctx context.Context, debt domain.DebtReceivable) error

	// FindDebtByID retrieves a specific debt or receivable.
	FindDebtByID(ctx context.Context, debtID string) (*domain.DebtReceivable, error)

	// ListDebts retrieves debts matching the filter, ordered by due date.
	ListDebts(ctx context.Context, filter DebtFilter) ([]domain.DebtReceivable, error)

	// UpdateDebt full-record replaces a debt or receivable. Debts are never
	// deleted; a settled debt stays on record with status PAID.
	UpdateDebt(ctx context.Context, debt domain.DebtReceivable) error
}
