package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// reportingService computes dashboard and report aggregates. Every report is
// a pure function of the data fetched for it; only explicit snapshots are
// persisted.
type reportingService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	txnRepo      portsrepo.TransactionReader
	debtRepo     portsrepo.DebtRepository
	settingsRepo portsrepo.SettingsRepository
	reportRepo   portsrepo.ReportRepository
	now          func() time.Time
}

// NewReportingService creates the reporting service.
func NewReportingService(
	accountRepo portsrepo.AccountReader,
	txnRepo portsrepo.TransactionReader,
	debtRepo portsrepo.DebtRepository,
	settingsRepo portsrepo.SettingsRepository,
	reportRepo portsrepo.ReportRepository,
) *reportingService {
	return &reportingService{
		accountRepo:  accountRepo,
		txnRepo:      txnRepo,
		debtRepo:     debtRepo,
		settingsRepo: settingsRepo,
		reportRepo:   reportRepo,
		now:          time.Now,
	}
}

// GetDashboardSummary computes the headline totals. Balance totals cover
// active accounts only; monthly figures cover the full current calendar
// month; outstanding debt sums payables not yet fully paid.
func (s *reportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	now := s.now()

	accounts, err := s.activeAccounts(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{AsOf: now}
	for _, acc := range accounts {
		switch acc.AccountType {
		case domain.Asset:
			summary.TotalAssets = summary.TotalAssets.Add(acc.Balance)
		case domain.Liability:
			summary.TotalLiabilities = summary.TotalLiabilities.Add(acc.Balance)
		case domain.Equity:
			summary.TotalEquity = summary.TotalEquity.Add(acc.Balance)
		}
	}

	// The window is the whole calendar month, not month start to now:
	// inclusion depends only on the date's month and year.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	txns, err := s.allTransactions(ctx, portsrepo.TransactionFilter{DateFrom: &monthStart, DateTo: &monthEnd})
	if err != nil {
		return nil, err
	}
	for _, txn := range txns {
		switch txn.Direction {
		case domain.Credit:
			summary.MonthlyIncome = summary.MonthlyIncome.Add(txn.Amount)
		case domain.Debit:
			summary.MonthlyExpense = summary.MonthlyExpense.Add(txn.Amount)
		}
	}

	debts, err := s.debtRepo.ListDebts(ctx, portsrepo.DebtFilter{DebtType: domain.Payable})
	if err != nil {
		s.LogError(ctx, err, "Failed to list payables for dashboard")
		return nil, fmt.Errorf("failed to compute outstanding debt: %w", err)
	}
	for _, debt := range debts {
		if debt.Status != domain.Paid {
			summary.OutstandingDebt = summary.OutstandingDebt.Add(debt.Amount)
		}
	}

	return summary, nil
}

// GetBalanceSheet groups active account balances by fundamental type, each
// section sorted by account code.
func (s *reportingService) GetBalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	accounts, err := s.activeAccounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}
	for _, acc := range accounts {
		amount := domain.AccountAmount{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			NetAmount: acc.Balance,
		}
		switch acc.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, amount)
			report.TotalAssets = report.TotalAssets.Add(acc.Balance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, amount)
			report.TotalLiabilities = report.TotalLiabilities.Add(acc.Balance)
		case domain.Equity:
			report.Equity = append(report.Equity, amount)
			report.TotalEquity = report.TotalEquity.Add(acc.Balance)
		}
	}

	return report, nil
}

// GetProfitLoss nets period revenue against period expenses. Revenue nets
// credits minus debits per account; expenses the reverse.
func (s *reportingService) GetProfitLoss(ctx context.Context, from, to time.Time) (*domain.ProfitLossReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("period end precedes start: %w", apperrors.ErrValidation)
	}

	accounts, err := s.activeAccounts(ctx)
	if err != nil {
		return nil, err
	}
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsByID[acc.AccountID] = acc
	}

	txns, err := s.allTransactions(ctx, portsrepo.TransactionFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		return nil, err
	}

	netByAccount := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		acc, ok := accountsByID[txn.AccountID]
		if !ok {
			continue
		}

		var signed decimal.Decimal
		switch acc.AccountType {
		case domain.Revenue:
			signed = txn.Amount
			if txn.Direction == domain.Debit {
				signed = signed.Neg()
			}
		case domain.Expense:
			signed = txn.Amount
			if txn.Direction == domain.Credit {
				signed = signed.Neg()
			}
		default:
			continue
		}
		netByAccount[txn.AccountID] = netByAccount[txn.AccountID].Add(signed)
	}

	report := &domain.ProfitLossReport{
		From:     from,
		To:       to,
		Revenue:  []domain.AccountAmount{},
		Expenses: []domain.AccountAmount{},
	}
	for accountID, net := range netByAccount {
		acc := accountsByID[accountID]
		amount := domain.AccountAmount{
			AccountID: accountID,
			Code:      acc.Code,
			Name:      acc.Name,
			NetAmount: net,
		}
		if acc.AccountType == domain.Revenue {
			report.Revenue = append(report.Revenue, amount)
			report.TotalRevenue = report.TotalRevenue.Add(net)
		} else {
			report.Expenses = append(report.Expenses, amount)
			report.TotalExpense = report.TotalExpense.Add(net)
		}
	}
	sortByCode(report.Revenue)
	sortByCode(report.Expenses)
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpense)

	return report, nil
}

// GetTaxReport applies the company tax rate to the month's net revenue.
func (s *reportingService) GetTaxReport(ctx context.Context, year, month int) (*domain.TaxReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be 1-12: %w", apperrors.ErrValidation)
	}

	settings, err := s.settingsRepo.GetCompanySettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		settings = &domain.CompanySettings{}
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	pl, err := s.GetProfitLoss(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.TaxReport{
		Year:           year,
		Month:          month,
		TaxableRevenue: pl.TotalRevenue,
		TaxRate:        settings.TaxRate,
		TaxDue:         pl.TotalRevenue.Mul(settings.TaxRate),
	}
	return report, nil
}

func (s *reportingService) SaveReport(ctx context.Context, req dto.SaveReportRequest, userID string) (*domain.SavedReport, error) {
	report := domain.SavedReport{
		ReportID:    uuid.NewString(),
		ReportType:  req.ReportType,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Payload:     []byte(req.Payload),
		GeneratedAt: s.now(),
		GeneratedBy: userID,
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save report snapshot", slog.String("report_type", string(req.ReportType)))
		return nil, err
	}

	s.LogInfo(ctx, "Report snapshot saved", slog.String("report_id", report.ReportID), slog.String("report_type", string(report.ReportType)))
	return &report, nil
}

func (s *reportingService) ListSavedReports(ctx context.Context, limit int) ([]domain.SavedReport, error) {
	reports, err := s.reportRepo.ListReports(ctx, limit, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list saved reports")
		return nil, fmt.Errorf("failed to list saved reports: %w", err)
	}
	if reports == nil {
		return []domain.SavedReport{}, nil
	}
	return reports, nil
}

func (s *reportingService) GetSavedReport(ctx context.Context, reportID string) (*domain.SavedReport, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find saved report", slog.String("report_id", reportID))
		}
		return nil, err
	}
	return report, nil
}

func (s *reportingService) activeAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, portsrepo.AccountFilter{ActiveOnly: true})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for report")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// allTransactions drains the token-paginated listing for a filter.
func (s *reportingService) allTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	filter.Limit = 1000

	var all []domain.Transaction
	for {
		page, token, err := s.txnRepo.ListTransactions(ctx, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions for report")
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		all = append(all, page...)
		if token == nil {
			return all, nil
		}
		filter.NextToken = token
	}
}

func sortByCode(amounts []domain.AccountAmount) {
	sort.Slice(amounts, func(i, j int) bool { return amounts[i].Code < amounts[j].Code })
}
