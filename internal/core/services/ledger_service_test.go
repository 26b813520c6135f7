package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/core/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.service = services.NewLedgerService(s.mockTxnRepo, s.mockAccountRepo)
}

func (s *LedgerServiceTestSuite) TestGetLedger_RunningBalances() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1-1001",
		Name:        "Kas",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	txns := []domain.Transaction{
		{
			TransactionID:   uuid.NewString(),
			AccountID:       account.AccountID,
			TransactionDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.RequireFromString("1000000"),
			Direction:       domain.Credit,
		},
		{
			TransactionID:   uuid.NewString(),
			AccountID:       account.AccountID,
			TransactionDate: time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.RequireFromString("5000000"),
			Direction:       domain.Debit,
		},
	}

	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return(txns, nil, nil).Once()

	view, err := s.service.GetLedger(ctx, account.AccountID, dto.LedgerParams{})

	s.NoError(err)
	s.Len(view.Entries, 2)
	s.Equal("-1000000", view.Entries[0].RunningBalance.String())
	s.Equal("4000000", view.Entries[1].RunningBalance.String())
	s.Equal("4000000", view.ClosingBalance.String())
	s.Equal(account.Name, view.AccountName)
}

func (s *LedgerServiceTestSuite) TestGetLedger_EmptySetClosesAtZero() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), AccountType: domain.Expense}

	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil, nil).Once()

	view, err := s.service.GetLedger(ctx, account.AccountID, dto.LedgerParams{})

	s.NoError(err)
	s.Empty(view.Entries)
	s.True(view.ClosingBalance.IsZero())
}

func (s *LedgerServiceTestSuite) TestGetLedger_DrainsAllPages() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), AccountType: domain.Asset}
	token := "page-2"

	page1 := []domain.Transaction{{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		Amount:        decimal.NewFromInt(100),
		Direction:     domain.Debit,
	}}
	page2 := []domain.Transaction{{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		Amount:        decimal.NewFromInt(50),
		Direction:     domain.Debit,
	}}

	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.NextToken == nil
	})).Return(page1, &token, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.NextToken != nil && *f.NextToken == token
	})).Return(page2, nil, nil).Once()

	view, err := s.service.GetLedger(ctx, account.AccountID, dto.LedgerParams{})

	s.NoError(err)
	s.Len(view.Entries, 2)
	s.Equal("150", view.ClosingBalance.String())
}

func (s *LedgerServiceTestSuite) TestGetLedger_UnknownAccount() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetLedger(ctx, uuid.NewString(), dto.LedgerParams{})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
