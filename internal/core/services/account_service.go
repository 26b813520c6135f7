package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the chart-of-accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, userRepo portsrepo.UserReader) *accountService {
	return &accountService{
		BaseService: BaseService{UserRepo: userRepo},
		accountRepo: accountRepo,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	now := time.Now()

	account := domain.Account{
		AccountID:    uuid.NewString(),
		Code:         req.Code,
		Name:         req.Name,
		AccountType:  req.AccountType,
		CurrencyCode: req.CurrencyCode,
		Description:  req.Description,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("account code %q already exists: %w", req.Code, err)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("account_code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("account_code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("account_code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, portsrepo.AccountFilter{
		AccountType: domain.AccountType(params.AccountType),
		ActiveOnly:  params.ActiveOnly,
		Search:      params.Search,
		Limit:       params.Limit,
		Offset:      params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// ExportAccountsCSV renders the filtered account list as a CSV document with
// a fixed header row.
func (s *accountService) ExportAccountsCSV(ctx context.Context, params dto.ListAccountsParams) ([]byte, error) {
	accounts, err := s.ListAccounts(ctx, params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"code", "name", "type", "currency_code", "balance", "is_active"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, acc := range accounts {
		record := []string{
			acc.Code,
			acc.Name,
			string(acc.AccountType),
			acc.CurrencyCode,
			acc.Balance.String(),
			strconv.FormatBool(acc.IsActive),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.LogInfo(ctx, "Accounts exported to CSV", slog.Int("count", len(accounts)))
	return buf.Bytes(), nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) SetAccountActive(ctx context.Context, accountID string, isActive bool, userID string) (*domain.Account, error) {
	now := time.Now()
	if err := s.accountRepo.SetAccountActive(ctx, accountID, isActive, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to set account active flag", slog.String("account_id", accountID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Account active flag set", slog.String("account_id", accountID), slog.Bool("is_active", isActive))
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// DeleteAccount removes an account. The repository refuses with ErrConflict
// while transactions still reference it; deactivation is the path that
// preserves history.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.RequireAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("account has transactions and cannot be deleted: %w", err)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
