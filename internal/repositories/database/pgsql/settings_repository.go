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

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for company and per-user
// settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetCompanySettings retrieves the single company settings row (id = 1).
func (r *PgxSettingsRepository) GetCompanySettings(ctx context.Context) (*domain.CompanySettings, error) {
	query := `
		SELECT id, company_name, address, tax_id, tax_rate, base_currency_code, display_currencies,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM company_settings
		WHERE id = 1;
	`
	var m models.CompanySettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.ID,
		&m.CompanyName,
		&m.Address,
		&m.TaxID,
		&m.TaxRate,
		&m.BaseCurrencyCode,
		&m.DisplayCurrencies,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load company settings", err)
	}
	d := mapping.ToDomainCompanySettings(m)
	return &d, nil
}

// SaveCompanySettings inserts or replaces the company settings row.
func (r *PgxSettingsRepository) SaveCompanySettings(ctx context.Context, settings domain.CompanySettings) error {
	m := mapping.ToModelCompanySettings(settings)
	query := `
		INSERT INTO company_settings (id, company_name, address, tax_id, tax_rate, base_currency_code, display_currencies,
		                              created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id)
		DO UPDATE SET company_name = EXCLUDED.company_name,
		              address = EXCLUDED.address,
		              tax_id = EXCLUDED.tax_id,
		              tax_rate = EXCLUDED.tax_rate,
		              base_currency_code = EXCLUDED.base_currency_code,
		              display_currencies = EXCLUDED.display_currencies,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyName,
		m.Address,
		m.TaxID,
		m.TaxRate,
		m.BaseCurrencyCode,
		m.DisplayCurrencies,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save company settings", err)
	}
	return nil
}

// GetAppSettings retrieves a user's presentation preferences.
func (r *PgxSettingsRepository) GetAppSettings(ctx context.Context, userID string) (*domain.AppSettings, error) {
	query := `
		SELECT user_id, theme, sidebar_collapsed, language, date_format,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM app_settings
		WHERE user_id = $1;
	`
	var m models.AppSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Theme,
		&m.SidebarCollapsed,
		&m.Language,
		&m.DateFormat,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to load app settings for user "+userID, err)
	}
	d := mapping.ToDomainAppSettings(m)
	return &d, nil
}

// SaveAppSettings inserts or replaces a user's presentation preferences.
func (r *PgxSettingsRepository) SaveAppSettings(ctx context.Context, settings domain.AppSettings) error {
	m := mapping.ToModelAppSettings(settings)
	query := `
		INSERT INTO app_settings (user_id, theme, sidebar_collapsed, language, date_format,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id)
		DO UPDATE SET theme = EXCLUDED.theme,
		              sidebar_collapsed = EXCLUDED.sidebar_collapsed,
		              language = EXCLUDED.language,
		              date_format = EXCLUDED.date_format,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Theme,
		m.SidebarCollapsed,
		m.Language,
		m.DateFormat,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to save app settings for user "+m.UserID, err)
	}
	return nil
}
