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

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for the customer and supplier
// registers.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, name, email, phone, address, is_active, created_at, created_by, last_updated_at, last_updated_by`

// partyTable maps a party kind to its backing table. The two registers share
// one schema and one repository.
func partyTable(kind domain.PartyKind) (string, error) {
	switch kind {
	case domain.Customer:
		return "customers", nil
	case domain.Supplier:
		return "suppliers", nil
	default:
		return "", apperrors.NewAppError(500, "unknown party kind "+string(kind), nil)
	}
}

func scanPartyRow(row pgx.Row) (*models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
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

// SaveParty persists a new customer or supplier row.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	table, err := partyTable(party.Kind)
	if err != nil {
		return err
	}
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO ` + table + ` (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
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
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party of the given kind by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + partyColumns + ` FROM ` + table + ` WHERE party_id = $1;`
	m, err := scanPartyRow(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party by ID "+partyID, err)
	}
	d := mapping.ToDomainParty(*m, kind)
	return &d, nil
}

// ListParties retrieves parties of the given kind ordered by name.
func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind, activeOnly bool, limit, offset int) ([]domain.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + partyColumns + ` FROM ` + table
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
		return nil, apperrors.NewAppError(500, "failed to query "+table, err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		m, err := scanPartyRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row", err)
		}
		parties = append(parties, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows", err)
	}

	return mapping.ToDomainPartySlice(parties, kind), nil
}

// UpdateParty full-record replaces a customer or supplier.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	table, err := partyTable(party.Kind)
	if err != nil {
		return err
	}
	m := mapping.ToModelParty(party)
	query := `
		UPDATE ` + table + `
		SET name = $2, email = $3, phone = $4, address = $5, is_active = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE party_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty removes a party record of the given kind.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error {
	table, err := partyTable(kind)
	if err != nil {
		return err
	}
	tag, err := r.Pool.Exec(ctx, `DELETE FROM `+table+` WHERE party_id = $1;`, partyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete party "+partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
