package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/models"
	"github.com/lancarbooks/lancar_backend/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for static currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_code, symbol, name, precision, created_at, created_by, last_updated_at, last_updated_by`

func scanCurrencyRow(row pgx.Row) (*models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.CurrencyCode,
		&m.Symbol,
		&m.Name,
		&m.Precision,
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

// SaveCurrency persists a new currency row.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode,
		m.Symbol,
		m.Name,
		m.Precision,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to insert currency "+m.CurrencyCode, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its ISO code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`
	m, err := scanCurrencyRow(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find currency by code "+code, err)
	}
	d := mapping.ToDomainCurrency(*m)
	return &d, nil
}

// ListCurrencies retrieves all supported currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY currency_code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", err)
	}
	defer rows.Close()

	currencies := []models.Currency{}
	for rows.Next() {
		m, err := scanCurrencyRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency row", err)
		}
		currencies = append(currencies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rows", err)
	}

	return mapping.ToDomainCurrencySlice(currencies), nil
}

type PgxCurrencyRateRepository struct {
	BaseRepository
}

// newPgxCurrencyRateRepository creates a new repository for the exchange-rate
// table.
func newPgxCurrencyRateRepository(pool *pgxpool.Pool) portsrepo.CurrencyRateRepository {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRateRepository = (*PgxCurrencyRateRepository)(nil)

const currencyRateColumns = `rate_id, from_code, to_code, rate, last_updated_at`

func scanCurrencyRateRow(row pgx.Row) (*models.CurrencyRate, error) {
	var m models.CurrencyRate
	err := row.Scan(
		&m.RateID,
		&m.FromCode,
		&m.ToCode,
		&m.Rate,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertRate inserts or replaces the rate for a (from, to) pair. Concurrent
// refreshes are last-write-wins per pair.
func (r *PgxCurrencyRateRepository) UpsertRate(ctx context.Context, rate domain.CurrencyRate) error {
	m := mapping.ToModelCurrencyRate(rate)
	query := `
		INSERT INTO currency_rates (` + currencyRateColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (from_code, to_code)
		DO UPDATE SET rate = EXCLUDED.rate, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateID,
		m.FromCode,
		m.ToCode,
		m.Rate,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert rate "+m.FromCode+"/"+m.ToCode, err)
	}
	return nil
}

// FindRate retrieves the rate for a (from, to) pair.
func (r *PgxCurrencyRateRepository) FindRate(ctx context.Context, fromCode, toCode string) (*domain.CurrencyRate, error) {
	query := `SELECT ` + currencyRateColumns + ` FROM currency_rates WHERE from_code = $1 AND to_code = $2;`
	m, err := scanCurrencyRateRow(r.Pool.QueryRow(ctx, query, fromCode, toCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rate "+fromCode+"/"+toCode, err)
	}
	d := mapping.ToDomainCurrencyRate(*m)
	return &d, nil
}

// ListRates retrieves the full rate table ordered by pair.
func (r *PgxCurrencyRateRepository) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `SELECT ` + currencyRateColumns + ` FROM currency_rates ORDER BY from_code, to_code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currency rates", err)
	}
	defer rows.Close()

	rates := []models.CurrencyRate{}
	for rows.Next() {
		m, err := scanCurrencyRateRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency rate row", err)
		}
		rates = append(rates, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rate rows", err)
	}

	return mapping.ToDomainCurrencyRateSlice(rates), nil
}
