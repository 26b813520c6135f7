package models

import "time"

// APIKey is the api_keys row shape. Only the SHA-256 hash of the secret is stored.
type APIKey struct {
	KeyID      string     `db:"key_id"`
	UserID     string     `db:"user_id"`
	Name       string     `db:"name"`
	KeyHash    string     `db:"key_hash"`
	LastUsedAt *time.Time `db:"last_used_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
	CreatedAt  time.Time  `db:"created_at"`
}
