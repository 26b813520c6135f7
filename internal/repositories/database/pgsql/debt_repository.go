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

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt/receivable data.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepository {
	return &PgxDebtRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, debt_type, counterparty, amount, due_date, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanDebtRow(row pgx.Row) (*models.DebtReceivable, error) {
	var m models.DebtReceivable
	err := row.Scan(
		&m.DebtID,
		&m.DebtType,
		&m.Counterparty,
		&m.Amount,
		&m.DueDate,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveDebt persists a new debt or receivable row.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.DebtReceivable) error {
	m := mapping.ToModelDebt(debt)
	query := `
		INSERT INTO debts_receivables (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.DebtType,
		m.Counterparty,
		m.Amount,
		m.DueDate,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert debt "+m.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a debt or receivable by its ID.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.DebtReceivable, error) {
	query := `SELECT ` + debtColumns + ` FROM debts_receivables WHERE debt_id = $1;`
	m, err := scanDebtRow(r.Pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find debt by ID "+debtID, err)
	}
	d := mapping.ToDomainDebt(*m)
	return &d, nil
}

// ListDebts retrieves debts matching the filter, ordered by due date.
func (r *PgxDebtRepository) ListDebts(ctx context.Context, filter portsrepo.DebtFilter) ([]domain.DebtReceivable, error) {
	query := `SELECT ` + debtColumns + ` FROM debts_receivables`
	clauses := []string{}
	args := []interface{}{}

	if filter.DebtType != "" {
		args = append(args, filter.DebtType)
		clauses = append(clauses, "debt_type = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.OverdueAsOf != nil {
		args = append(args, *filter.OverdueAsOf)
		clauses = append(clauses, "due_date < $"+strconv.Itoa(len(args))+" AND status <> 'PAID'")
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY due_date"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debts", err)
	}
	defer rows.Close()

	debts := []models.DebtReceivable{}
	for rows.Next() {
		m, err := scanDebtRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan debt row", err)
		}
		debts = append(debts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating debt rows", err)
	}

	return mapping.ToDomainDebtSlice(debts), nil
}

// UpdateDebt full-record replaces a debt or receivable.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.DebtReceivable) error {
	m := mapping.ToModelDebt(debt)
	query := `
		UPDATE debts_receivables
		SET debt_type = $2, counterparty = $3, amount = $4, due_date = $5,
		    status = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE debt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.DebtType,
		m.Counterparty,
		m.Amount,
		m.DueDate,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update debt "+m.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
