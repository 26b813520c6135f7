package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/models"
	"github.com/lancarbooks/lancar_backend/internal/utils/mapping"
)

type PgxAPIKeyRepository struct {
	BaseRepository
}

// newPgxAPIKeyRepository creates a new repository for API key data.
func newPgxAPIKeyRepository(pool *pgxpool.Pool) portsrepo.APIKeyRepository {
	return &PgxAPIKeyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.APIKeyRepository = (*PgxAPIKeyRepository)(nil)

const apiKeyColumns = `key_id, user_id, name, key_hash, last_used_at, expires_at, revoked_at, created_at`

func scanAPIKeyRow(row pgx.Row) (*models.APIKey, error) {
	var m models.APIKey
	err := row.Scan(
		&m.KeyID,
		&m.UserID,
		&m.Name,
		&m.KeyHash,
		&m.LastUsedAt,
		&m.ExpiresAt,
		&m.RevokedAt,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAPIKey persists a new API key row. Only the hash of the secret is stored.
func (r *PgxAPIKeyRepository) SaveAPIKey(ctx context.Context, key domain.APIKey) error {
	m := mapping.ToModelAPIKey(key)
	query := `
		INSERT INTO api_keys (` + apiKeyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.KeyID,
		m.UserID,
		m.Name,
		m.KeyHash,
		m.LastUsedAt,
		m.ExpiresAt,
		m.RevokedAt,
		m.CreatedAt,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return apperrors.NewAppError(500, "failed to insert API key "+m.KeyID, err)
	}
	return nil
}

// FindAPIKeyByHash retrieves a key by the SHA-256 hash of its secret.
func (r *PgxAPIKeyRepository) FindAPIKeyByHash(ctx context.Context, keyHash string) (*domain.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE key_hash = $1;`
	m, err := scanAPIKeyRow(r.Pool.QueryRow(ctx, query, keyHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find API key by hash", err)
	}
	d := mapping.ToDomainAPIKey(*m)
	return &d, nil
}

// ListAPIKeys retrieves the keys owned by a user, newest first.
func (r *PgxAPIKeyRepository) ListAPIKeys(ctx context.Context, userID string) ([]domain.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query API keys for user "+userID, err)
	}
	defer rows.Close()

	keys := []models.APIKey{}
	for rows.Next() {
		m, err := scanAPIKeyRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan API key row", err)
		}
		keys = append(keys, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating API key rows", err)
	}

	return mapping.ToDomainAPIKeySlice(keys), nil
}

// RevokeAPIKey marks a key revoked.
func (r *PgxAPIKeyRepository) RevokeAPIKey(ctx context.Context, keyID string, revokedAt time.Time) error {
	query := `UPDATE api_keys SET revoked_at = $2 WHERE key_id = $1 AND revoked_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, keyID, revokedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to revoke API key "+keyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// TouchLastUsed records when a key last authenticated a request.
func (r *PgxAPIKeyRepository) TouchLastUsed(ctx context.Context, keyID string, usedAt time.Time) error {
	query := `UPDATE api_keys SET last_used_at = $2 WHERE key_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, keyID, usedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to touch API key "+keyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
