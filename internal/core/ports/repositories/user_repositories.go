package repositories

import (
	"context"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/models"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by login email, including credential
	// columns, for authentication.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindUserModelByID retrieves the full row including credential columns.
	FindUserModelByID(ctx context.Context, userID string) (*models.User, error)

	// ListUsers retrieves users ordered by name.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// CountUsers returns the total number of users, active or not.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user with the given password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// UpdateUser updates a user's profile attributes.
	UpdateUser(ctx context.Context, user domain.User) error

	// SetUserActive flips the active flag. Users are never deleted.
	SetUserActive(ctx context.Context, userID string, active bool, updaterUserID string, now time.Time) error

	// UpdatePasswordHash replaces a user's password hash.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, now time.Time) error

	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken removes any stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
