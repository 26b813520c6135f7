package services

import (
	"context"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// ReportingSvcFacade aggregates financial data into dashboard and report
// views. Generation is pure computation over fetched slices; persistence is
// limited to explicit snapshots.
type ReportingSvcFacade interface {
	// GetDashboardSummary computes the headline totals for the dashboard.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)

	// GetBalanceSheet groups active account balances by fundamental type.
	GetBalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)

	// GetProfitLoss nets revenue against expenses for the period.
	GetProfitLoss(ctx context.Context, from, to time.Time) (*domain.ProfitLossReport, error)

	// GetTaxReport applies the company tax rate to the month's revenue.
	GetTaxReport(ctx context.Context, year, month int) (*domain.TaxReport, error)

	// SaveReport persists a snapshot of a generated report.
	SaveReport(ctx context.Context, req dto.SaveReportRequest, userID string) (*domain.SavedReport, error)

	// ListSavedReports retrieves stored snapshots, newest first.
	ListSavedReports(ctx context.Context, limit int) ([]domain.SavedReport, error)

	// GetSavedReport retrieves one stored snapshot.
	GetSavedReport(ctx context.Context, reportID string) (*domain.SavedReport, error)
}
