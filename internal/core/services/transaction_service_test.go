package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/core/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.TransactionSvcFacade
	userID          string
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewTransactionService(s.mockTxnRepo, s.mockAccountRepo, s.mockUserRepo)
	s.userID = uuid.NewString()
}

func (s *TransactionServiceTestSuite) assetAccount() *domain.Account {
	return &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1-1001",
		Name:        "Kas",
		AccountType: domain.Asset,
		IsActive:    true,
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_DebitOnAssetAddsBalance() {
	ctx := context.Background()
	account := s.assetAccount()
	amount := decimal.RequireFromString("5000000")

	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()
	s.mockTxnRepo.On("SaveTransaction", mock.Anything, mock.Anything, amount).Return(nil).Once()

	txn, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       account.AccountID,
		TransactionDate: time.Now(),
		Amount:          amount,
		Direction:       domain.Debit,
	}, s.userID)

	s.NoError(err)
	s.Equal(account.AccountID, txn.AccountID)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_CreditOnAssetSubtractsBalance() {
	ctx := context.Background()
	account := s.assetAccount()
	amount := decimal.RequireFromString("1000000")

	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()
	s.mockTxnRepo.On("SaveTransaction", mock.Anything, mock.Anything, amount.Neg()).Return(nil).Once()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       account.AccountID,
		TransactionDate: time.Now(),
		Amount:          amount,
		Direction:       domain.Credit,
	}, s.userID)

	s.NoError(err)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_InactiveAccountRejected() {
	ctx := context.Background()
	account := s.assetAccount()
	account.IsActive = false

	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       account.AccountID,
		TransactionDate: time.Now(),
		Amount:          decimal.NewFromInt(100),
		Direction:       domain.Debit,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmountRejected() {
	ctx := context.Background()
	account := s.assetAccount()

	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()

	_, err := s.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		AccountID:       account.AccountID,
		TransactionDate: time.Now(),
		Amount:          decimal.Zero,
		Direction:       domain.Debit,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_MoveBetweenAccounts() {
	ctx := context.Background()
	oldAccount := s.assetAccount()
	newAccount := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1-1002",
		Name:        "Bank",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	amount := decimal.RequireFromString("250000")
	existing := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       oldAccount.AccountID,
		TransactionDate: time.Now().AddDate(0, 0, -1),
		Amount:          amount,
		Direction:       domain.Debit,
	}

	s.mockTxnRepo.On("FindTransactionByID", mock.Anything, existing.TransactionID).Return(existing, nil).Once()
	s.mockAccountRepo.On("FindAccountByID", mock.Anything, oldAccount.AccountID).Return(oldAccount, nil).Once()
	s.mockAccountRepo.On("FindAccountByID", mock.Anything, newAccount.AccountID).Return(newAccount, nil).Once()

	s.mockTxnRepo.On("UpdateTransaction", mock.Anything, mock.Anything, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		// Old account loses the debit, new account gains it.
		return deltas[oldAccount.AccountID].Equal(amount.Neg()) && deltas[newAccount.AccountID].Equal(amount)
	})).Return(nil).Once()

	updated, err := s.service.UpdateTransaction(ctx, existing.TransactionID, dto.UpdateTransactionRequest{
		AccountID:       newAccount.AccountID,
		TransactionDate: existing.TransactionDate,
		Amount:          amount,
		Direction:       domain.Debit,
	}, s.userID)

	s.NoError(err)
	s.Equal(newAccount.AccountID, updated.AccountID)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_DirectionFlipSameAccount() {
	ctx := context.Background()
	account := s.assetAccount()
	amount := decimal.RequireFromString("100")
	existing := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		TransactionDate: time.Now(),
		Amount:          amount,
		Direction:       domain.Debit,
	}

	s.mockTxnRepo.On("FindTransactionByID", mock.Anything, existing.TransactionID).Return(existing, nil).Once()
	s.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()

	s.mockTxnRepo.On("UpdateTransaction", mock.Anything, mock.Anything, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		// -100 to reverse the debit, -100 more for the new credit.
		return deltas[account.AccountID].Equal(decimal.RequireFromString("-200"))
	})).Return(nil).Once()

	_, err := s.service.UpdateTransaction(ctx, existing.TransactionID, dto.UpdateTransactionRequest{
		AccountID:       account.AccountID,
		TransactionDate: existing.TransactionDate,
		Amount:          amount,
		Direction:       domain.Credit,
	}, s.userID)

	s.NoError(err)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestImportCSV_ValidFile() {
	ctx := context.Background()
	account := s.assetAccount()

	csvData := "date,account_code,direction,amount,description\n" +
		"2026-01-15,1-1001,DEBIT,5000000,Setoran modal\n" +
		"2026-01-16,1-1001,CREDIT,1000000,Beli perlengkapan\n"

	s.mockAccountRepo.On("FindAccountByCode", mock.Anything, "1-1001").Return(account, nil).Once()
	s.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2
	}), mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas[account.AccountID].Equal(decimal.RequireFromString("4000000"))
	})).Return(nil).Once()

	result, err := s.service.ImportTransactionsCSV(ctx, strings.NewReader(csvData), s.userID)

	s.NoError(err)
	s.Equal(2, result.Imported)
	s.Empty(result.Errors)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestImportCSV_OneBadRowRejectsFile() {
	ctx := context.Background()
	account := s.assetAccount()

	csvData := "date,account_code,direction,amount,description\n" +
		"2026-01-15,1-1001,DEBIT,5000000,ok\n" +
		"2026-01-16,1-1001,SIDEWAYS,1000000,bad direction\n"

	s.mockAccountRepo.On("FindAccountByCode", mock.Anything, "1-1001").Return(account, nil).Once()

	result, err := s.service.ImportTransactionsCSV(ctx, strings.NewReader(csvData), s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(0, result.Imported)
	s.Len(result.Errors, 1)
	s.Contains(result.Errors[0], "line 3")
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestImportCSV_WrongHeaderRejected() {
	ctx := context.Background()

	csvData := "tanggal,kode,arah,jumlah,keterangan\n2026-01-15,1-1001,DEBIT,100,x\n"

	_, err := s.service.ImportTransactionsCSV(ctx, strings.NewReader(csvData), s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestImportCSV_UnknownAccountCode() {
	ctx := context.Background()

	csvData := "date,account_code,direction,amount,description\n2026-01-15,9-9999,DEBIT,100,x\n"

	s.mockAccountRepo.On("FindAccountByCode", mock.Anything, "9-9999").Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.ImportTransactionsCSV(ctx, strings.NewReader(csvData), s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(result.Errors[0], "unknown account code")
}

func (s *TransactionServiceTestSuite) TestListTransactions_PassesToken() {
	ctx := context.Background()
	token := "next-page"
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return([]domain.Transaction{}, &token, nil).Once()

	_, nextToken, err := s.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 10})

	s.NoError(err)
	s.Equal(&token, nextToken)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
