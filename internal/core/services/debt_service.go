package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// debtService tracks payables and receivables. Status is user-maintained;
// nothing here derives it from payments.
type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepository
}

// NewDebtService creates the debt/receivable service.
func NewDebtService(debtRepo portsrepo.DebtRepository) *debtService {
	return &debtService{debtRepo: debtRepo}
}

func (s *debtService) GetDebtByID(ctx context.Context, debtID string) (*domain.DebtReceivable, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt", slog.String("debt_id", debtID))
		}
		return nil, err
	}
	return debt, nil
}

func (s *debtService) ListDebts(ctx context.Context, params dto.ListDebtsParams) ([]domain.DebtReceivable, error) {
	filter := portsrepo.DebtFilter{
		DebtType: domain.DebtType(params.DebtType),
		Status:   domain.DebtStatus(params.Status),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if params.OverdueOnly {
		now := time.Now()
		filter.OverdueAsOf = &now
	}

	debts, err := s.debtRepo.ListDebts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts")
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	if debts == nil {
		return []domain.DebtReceivable{}, nil
	}
	return debts, nil
}

func (s *debtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.DebtReceivable, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	debt := domain.DebtReceivable{
		DebtID:       uuid.NewString(),
		DebtType:     req.DebtType,
		Counterparty: req.Counterparty,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		Status:       domain.Unpaid,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt", slog.String("counterparty", req.Counterparty))
		return nil, err
	}

	s.LogInfo(ctx, "Debt created", slog.String("debt_id", debt.DebtID), slog.String("debt_type", string(debt.DebtType)))
	return &debt, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, debtID string, req dto.UpdateDebtRequest, userID string) (*domain.DebtReceivable, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	debt.DebtType = req.DebtType
	debt.Counterparty = req.Counterparty
	debt.Amount = req.Amount
	debt.DueDate = req.DueDate
	debt.Status = req.Status
	debt.Notes = req.Notes
	debt.LastUpdatedAt = time.Now()
	debt.LastUpdatedBy = userID

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt updated", slog.String("debt_id", debtID), slog.String("status", string(debt.Status)))
	return debt, nil
}
