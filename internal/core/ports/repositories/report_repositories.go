package repositories

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// ReportRepository defines operations for saved report snapshots
type ReportRepository interface {
	// SaveReport persists a generated report snapshot.
	SaveReport(ctx context.Context, report domain.SavedReport) error

	// FindReportByID retrieves a saved report.
	FindReportByID(ctx context.Context, reportID string) (*domain.SavedReport, error)

	// ListReports retrieves saved reports, newest first.
	ListReports(ctx context.Context, limit, offset int) ([]domain.SavedReport, error)
}
