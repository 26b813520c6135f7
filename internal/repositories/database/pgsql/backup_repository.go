package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/models"
	"github.com/lancarbooks/lancar_backend/internal/utils/mapping"
)

type PgxBackupRepository struct {
	BaseRepository
}

// newPgxBackupRepository creates a new repository for the backup history.
func newPgxBackupRepository(pool *pgxpool.Pool) portsrepo.BackupRepository {
	return &PgxBackupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BackupRepository = (*PgxBackupRepository)(nil)

// countableTables is the closed set of tables CountRows may touch. Table names
// are interpolated into SQL, so only names from this set are accepted.
var countableTables = map[string]bool{
	"bank_accounts":     true,
	"chart_of_accounts": true,
	"debts_receivables": true,
	"transactions":      true,
	"customers":         true,
	"suppliers":         true,
	"users":             true,
	"reports":           true,
	"app_settings":      true,
	"company_settings":  true,
	"api_keys":          true,
	"currency_rates":    true,
}

const backupColumns = `backup_id, started_at, finished_at, status, row_counts, triggered_by, notes`

func scanBackupRow(row pgx.Row) (*models.BackupRecord, error) {
	var m models.BackupRecord
	err := row.Scan(
		&m.BackupID,
		&m.StartedAt,
		&m.FinishedAt,
		&m.Status,
		&m.RowCounts,
		&m.TriggeredBy,
		&m.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBackupRecord persists a backup history entry.
func (r *PgxBackupRepository) SaveBackupRecord(ctx context.Context, record domain.BackupRecord) error {
	m, err := mapping.ToModelBackupRecord(record)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode backup record "+record.BackupID, err)
	}
	query := `
		INSERT INTO backup_history (` + backupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.BackupID,
		m.StartedAt,
		m.FinishedAt,
		m.Status,
		m.RowCounts,
		m.TriggeredBy,
		m.Notes,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert backup record "+m.BackupID, err)
	}
	return nil
}

// ListBackupRecords retrieves history entries, newest first.
func (r *PgxBackupRepository) ListBackupRecords(ctx context.Context, limit, offset int) ([]domain.BackupRecord, error) {
	query := `SELECT ` + backupColumns + ` FROM backup_history ORDER BY started_at DESC`
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
		return nil, apperrors.NewAppError(500, "failed to query backup history", err)
	}
	defer rows.Close()

	records := []domain.BackupRecord{}
	for rows.Next() {
		m, err := scanBackupRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan backup history row", err)
		}
		d, err := mapping.ToDomainBackupRecord(*m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode backup record "+m.BackupID, err)
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating backup history rows", err)
	}

	return records, nil
}

// CountRows returns the row count of a whitelisted entity table.
func (r *PgxBackupRepository) CountRows(ctx context.Context, table string) (int, error) {
	if !countableTables[table] {
		return 0, apperrors.NewAppError(500, "table "+table+" is not countable", nil)
	}
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table+`;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count rows in "+table, err)
	}
	return count, nil
}
