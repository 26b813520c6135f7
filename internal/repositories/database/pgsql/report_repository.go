package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/models"
	"github.com/lancarbooks/lancar_backend/internal/utils/mapping"
)

type PgxReportRepository struct {
	BaseRepository
}

// newPgxReportRepository creates a new repository for saved report snapshots.
func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepository {
	return &PgxReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportRepository = (*PgxReportRepository)(nil)

const reportColumns = `report_id, report_type, period_start, period_end, payload, generated_at, generated_by`

func scanReportRow(row pgx.Row) (*models.SavedReport, error) {
	var m models.SavedReport
	err := row.Scan(
		&m.ReportID,
		&m.ReportType,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.Payload,
		&m.GeneratedAt,
		&m.GeneratedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveReport persists a generated report snapshot.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.SavedReport) error {
	m := mapping.ToModelSavedReport(report)
	query := `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReportID,
		m.ReportType,
		m.PeriodStart,
		m.PeriodEnd,
		m.Payload,
		m.GeneratedAt,
		m.GeneratedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert report "+m.ReportID, err)
	}
	return nil
}

// FindReportByID retrieves a saved report.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.SavedReport, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE report_id = $1;`
	m, err := scanReportRow(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find report by ID "+reportID, err)
	}
	d := mapping.ToDomainSavedReport(*m)
	return &d, nil
}

// ListReports retrieves saved reports, newest first.
func (r *PgxReportRepository) ListReports(ctx context.Context, limit, offset int) ([]domain.SavedReport, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY generated_at DESC`
	args := []interface{}{}
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reports", err)
	}
	defer rows.Close()

	reports := []domain.SavedReport{}
	for rows.Next() {
		m, err := scanReportRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan report row", err)
		}
		reports = append(reports, mapping.ToDomainSavedReport(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating report rows", err)
	}

	return reports, nil
}
