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

// bankAccountService manages the registered physical bank accounts.
type bankAccountService struct {
	BaseService
	bankRepo portsrepo.BankAccountRepository
}

// NewBankAccountService creates the bank account service.
func NewBankAccountService(bankRepo portsrepo.BankAccountRepository) *bankAccountService {
	return &bankAccountService{bankRepo: bankRepo}
}

func (s *bankAccountService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	account, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank account", slog.String("bank_account_id", bankAccountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	accounts, err := s.bankRepo.ListBankAccounts(ctx, false, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	if accounts == nil {
		return []domain.BankAccount{}, nil
	}
	return accounts, nil
}

func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	now := time.Now()
	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		Name:          req.Name,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		HolderName:    req.HolderName,
		CurrencyCode:  req.CurrencyCode,
		Balance:       req.Balance,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.bankRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account created", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

func (s *bankAccountService) UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	account, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	account.Name = req.Name
	account.BankName = req.BankName
	account.AccountNumber = req.AccountNumber
	account.HolderName = req.HolderName
	account.CurrencyCode = req.CurrencyCode
	account.Balance = req.Balance
	account.IsActive = req.IsActive
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.bankRepo.UpdateBankAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update bank account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account updated", slog.String("bank_account_id", bankAccountID))
	return account, nil
}

// DeleteBankAccount deactivates the record; the row is kept for history.
func (s *bankAccountService) DeleteBankAccount(ctx context.Context, bankAccountID string, userID string) error {
	account, err := s.bankRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return err
	}

	account.IsActive = false
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.bankRepo.UpdateBankAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate bank account", slog.String("bank_account_id", bankAccountID))
		return err
	}

	s.LogInfo(ctx, "Bank account deactivated", slog.String("bank_account_id", bankAccountID))
	return nil
}
