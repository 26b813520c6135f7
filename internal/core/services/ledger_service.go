package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/utils/accounting"
)

// ledgerService builds the derived per-account running-balance view.
type ledgerService struct {
	BaseService
	txnRepo     portsrepo.TransactionReader
	accountRepo portsrepo.AccountReader
}

// NewLedgerService creates the ledger view service.
func NewLedgerService(txnRepo portsrepo.TransactionReader, accountRepo portsrepo.AccountReader) *ledgerService {
	return &ledgerService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// GetLedger folds the account's filtered transactions in chronological order.
// The accumulator starts at zero regardless of the cached account balance, so
// a date-bounded view shows movement within the window only.
func (s *ledgerService) GetLedger(ctx context.Context, accountID string, params dto.LedgerParams) (*domain.LedgerView, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var all []domain.Transaction
	var nextToken *string
	for {
		page, token, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
			AccountID:   accountID,
			DateFrom:    params.DateFrom,
			DateTo:      params.DateTo,
			Description: params.Description,
			Limit:       1000,
			NextToken:   nextToken,
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions for ledger", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to build ledger: %w", err)
		}
		all = append(all, page...)
		if token == nil {
			break
		}
		nextToken = token
	}

	entries, closing, err := accounting.FoldRunningBalance(all, account.AccountType)
	if err != nil {
		return nil, err
	}

	return &domain.LedgerView{
		AccountID:      account.AccountID,
		AccountName:    account.Name,
		AccountType:    account.AccountType,
		Entries:        entries,
		ClosingBalance: closing,
	}, nil
}
