package domain

import "time"

// APIKey authenticates machine callers (e.g. the scheduled currency-rate
// refresh). Only the SHA-256 hash of the secret is stored.
type APIKey struct {
	KeyID      string     `json:"keyID"`
	UserID     string     `json:"userID"` // Owner, FK -> users.user_id
	Name       string     `json:"name"`
	KeyHash    string     `json:"-"` // Never expose the hash in JSON responses
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// IsExpired reports whether the key has passed its expiry, if any.
func (k *APIKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}

// IsUsable reports whether the key may authenticate a request.
func (k *APIKey) IsUsable(now time.Time) bool {
	return k.RevokedAt == nil && !k.IsExpired(now)
}
