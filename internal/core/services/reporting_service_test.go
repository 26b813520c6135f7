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
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockTxnRepo      *MockTransactionRepository
	mockDebtRepo     *MockDebtRepository
	mockSettingsRepo *MockSettingsRepository
	mockReportRepo   *MockReportRepository
	service          portssvc.ReportingSvcFacade
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockDebtRepo = new(MockDebtRepository)
	s.mockSettingsRepo = new(MockSettingsRepository)
	s.mockReportRepo = new(MockReportRepository)
	s.service = services.NewReportingService(s.mockAccountRepo, s.mockTxnRepo, s.mockDebtRepo, s.mockSettingsRepo, s.mockReportRepo)
}

func account(code string, accType domain.AccountType, balance string, active bool) domain.Account {
	return domain.Account{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        code,
		AccountType: accType,
		Balance:     decimal.RequireFromString(balance),
		IsActive:    active,
	}
}

func (s *ReportingServiceTestSuite) TestDashboard_TotalsFromActiveAccounts() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("1-1001", domain.Asset, "5000000", true),
		account("1-1002", domain.Asset, "2500000", true),
		account("2-1001", domain.Liability, "1000000", true),
		account("3-1001", domain.Equity, "6500000", true),
	}

	s.mockAccountRepo.On("ListAccounts", mock.Anything, mock.MatchedBy(func(f portsrepo.AccountFilter) bool {
		return f.ActiveOnly
	})).Return(accounts, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil, nil).Once()
	s.mockDebtRepo.On("ListDebts", mock.Anything, mock.Anything).Return([]domain.DebtReceivable{}, nil).Once()

	summary, err := s.service.GetDashboardSummary(ctx)

	s.NoError(err)
	s.Equal("7500000", summary.TotalAssets.String())
	s.Equal("1000000", summary.TotalLiabilities.String())
	s.Equal("6500000", summary.TotalEquity.String())
	s.True(summary.MonthlyIncome.IsZero())
}

func (s *ReportingServiceTestSuite) TestDashboard_MonthWindowAndDirectionSplit() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{Amount: decimal.RequireFromString("3000000"), Direction: domain.Credit},
		{Amount: decimal.RequireFromString("1200000"), Direction: domain.Debit},
		{Amount: decimal.RequireFromString("500000"), Direction: domain.Credit},
	}

	s.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything).Return([]domain.Account{}, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		if f.DateFrom == nil || f.DateTo == nil {
			return false
		}
		// Window spans the whole current month: a transaction dated on the
		// last day of the month must fall inside it.
		monthEnd := f.DateFrom.AddDate(0, 1, 0).Add(-time.Nanosecond)
		lastDay := time.Date(f.DateFrom.Year(), f.DateFrom.Month(), monthEnd.Day(), 0, 0, 0, 0, f.DateFrom.Location())
		return f.DateFrom.Day() == 1 &&
			f.DateFrom.Month() == time.Now().Month() &&
			f.DateTo.Equal(monthEnd) &&
			!lastDay.After(*f.DateTo)
	})).Return(txns, nil, nil).Once()
	s.mockDebtRepo.On("ListDebts", mock.Anything, mock.Anything).Return([]domain.DebtReceivable{}, nil).Once()

	summary, err := s.service.GetDashboardSummary(ctx)

	s.NoError(err)
	s.Equal("3500000", summary.MonthlyIncome.String())
	s.Equal("1200000", summary.MonthlyExpense.String())
}

func (s *ReportingServiceTestSuite) TestDashboard_OutstandingDebtSkipsPaid() {
	ctx := context.Background()
	debts := []domain.DebtReceivable{
		{Amount: decimal.RequireFromString("2000000"), Status: domain.Unpaid},
		{Amount: decimal.RequireFromString("1500000"), Status: domain.PartiallyPaid},
		{Amount: decimal.RequireFromString("9000000"), Status: domain.Paid},
	}

	s.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything).Return([]domain.Account{}, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil, nil).Once()
	s.mockDebtRepo.On("ListDebts", mock.Anything, mock.MatchedBy(func(f portsrepo.DebtFilter) bool {
		return f.DebtType == domain.Payable
	})).Return(debts, nil).Once()

	summary, err := s.service.GetDashboardSummary(ctx)

	s.NoError(err)
	s.Equal("3500000", summary.OutstandingDebt.String())
}

func (s *ReportingServiceTestSuite) TestBalanceSheet_GroupsByType() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("1-1001", domain.Asset, "100", true),
		account("2-1001", domain.Liability, "40", true),
		account("3-1001", domain.Equity, "60", true),
		account("4-1001", domain.Revenue, "999", true), // excluded from balance sheet
	}
	s.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything).Return(accounts, nil).Once()

	report, err := s.service.GetBalanceSheet(ctx)

	s.NoError(err)
	s.Len(report.Assets, 1)
	s.Len(report.Liabilities, 1)
	s.Len(report.Equity, 1)
	s.Equal("100", report.TotalAssets.String())
	s.Equal("40", report.TotalLiabilities.String())
	s.Equal("60", report.TotalEquity.String())
}

func (s *ReportingServiceTestSuite) TestProfitLoss_NetsRevenueAgainstExpenses() {
	ctx := context.Background()
	revenue := account("4-1001", domain.Revenue, "0", true)
	expense := account("5-1001", domain.Expense, "0", true)
	accounts := []domain.Account{revenue, expense}

	txns := []domain.Transaction{
		{AccountID: revenue.AccountID, Amount: decimal.RequireFromString("10000000"), Direction: domain.Credit},
		{AccountID: revenue.AccountID, Amount: decimal.RequireFromString("500000"), Direction: domain.Debit}, // refund
		{AccountID: expense.AccountID, Amount: decimal.RequireFromString("4000000"), Direction: domain.Debit},
	}

	s.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything).Return(accounts, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return(txns, nil, nil).Once()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	report, err := s.service.GetProfitLoss(ctx, from, to)

	s.NoError(err)
	s.Equal("9500000", report.TotalRevenue.String())
	s.Equal("4000000", report.TotalExpense.String())
	s.Equal("5500000", report.NetProfit.String())
}

func (s *ReportingServiceTestSuite) TestProfitLoss_InvertedPeriodRejected() {
	ctx := context.Background()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.GetProfitLoss(ctx, from, to)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestTaxReport_AppliesCompanyRate() {
	ctx := context.Background()
	revenue := account("4-1001", domain.Revenue, "0", true)

	s.mockSettingsRepo.On("GetCompanySettings", mock.Anything).Return(&domain.CompanySettings{
		TaxRate: decimal.RequireFromString("0.005"),
	}, nil).Once()
	s.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything).Return([]domain.Account{revenue}, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return([]domain.Transaction{
		{AccountID: revenue.AccountID, Amount: decimal.RequireFromString("20000000"), Direction: domain.Credit},
	}, nil, nil).Once()

	report, err := s.service.GetTaxReport(ctx, 2026, 1)

	s.NoError(err)
	s.Equal("20000000", report.TaxableRevenue.String())
	s.Equal("100000", report.TaxDue.String())
}

func (s *ReportingServiceTestSuite) TestTaxReport_NoSettingsMeansZeroRate() {
	ctx := context.Background()

	s.mockSettingsRepo.On("GetCompanySettings", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.mockAccountRepo.On("ListAccounts", mock.Anything, mock.Anything).Return([]domain.Account{}, nil).Once()
	s.mockTxnRepo.On("ListTransactions", mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil, nil).Once()

	report, err := s.service.GetTaxReport(ctx, 2026, 3)

	s.NoError(err)
	s.True(report.TaxDue.IsZero())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
