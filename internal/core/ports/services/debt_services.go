package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// DebtSvcFacade manages payables and receivables. Records are never deleted;
// settlement is tracked through the status field on update.
type DebtSvcFacade interface {
	// GetDebtByID retrieves a specific debt or receivable.
	GetDebtByID(ctx context.Context, debtID string) (*domain.DebtReceivable, error)

	// ListDebts retrieves debts matching the given filters.
	ListDebts(ctx context.Context, params dto.ListDebtsParams) ([]domain.DebtReceivable, error)

	// CreateDebt persists a new debt or receivable.
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.DebtReceivable, error)

	// UpdateDebt updates an existing debt, including its payment status.
	UpdateDebt(ctx context.Context, debtID string, req dto.UpdateDebtRequest, userID string) (*domain.DebtReceivable, error)
}
