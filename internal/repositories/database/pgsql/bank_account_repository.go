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

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepository {
	return &PgxBankAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `bank_account_id, name, bank_name, account_number, holder_name, currency_code, balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBankAccountRow(row pgx.Row) (*models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.BankAccountID,
		&m.Name,
		&m.BankName,
		&m.AccountNumber,
		&m.HolderName,
		&m.CurrencyCode,
		&m.Balance,
		&m.IsActive,
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

// SaveBankAccount persists a new bank account row.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankAccountID,
		m.Name,
		m.BankName,
		m.AccountNumber,
		m.HolderName,
		m.CurrencyCode,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to insert bank account "+m.BankAccountID, err)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`
	m, err := scanBankAccountRow(r.Pool.QueryRow(ctx, query, bankAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bank account by ID "+bankAccountID, err)
	}
	d := mapping.ToDomainBankAccount(*m)
	return &d, nil
}

// ListBankAccounts retrieves bank accounts ordered by name.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts`
	args := []interface{}{}
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name"
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
		return nil, apperrors.NewAppError(500, "failed to query bank accounts", err)
	}
	defer rows.Close()

	accounts := []models.BankAccount{}
	for rows.Next() {
		m, err := scanBankAccountRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank account row", err)
		}
		accounts = append(accounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank account rows", err)
	}

	return mapping.ToDomainBankAccountSlice(accounts), nil
}

// UpdateBankAccount full-record replaces a bank account.
func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		UPDATE bank_accounts
		SET name = $2, bank_name = $3, account_number = $4, holder_name = $5,
		    currency_code = $6, balance = $7, is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE bank_account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BankAccountID,
		m.Name,
		m.BankName,
		m.AccountNumber,
		m.HolderName,
		m.CurrencyCode,
		m.Balance,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to update bank account "+m.BankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
