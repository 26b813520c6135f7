package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users, active and inactive.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data. Users are never
// deleted; membership ends by deactivation.
type UserWriterSvc interface {
	// CreateUser persists a new user; callers must hold the admin role.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, callerID string) (*domain.User, error)

	// UpdateUser updates an existing user's profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, callerID string) (*domain.User, error)

	// SetUserActive toggles the active flag; inactive users cannot log in.
	SetUserActive(ctx context.Context, userID string, isActive bool, callerID string) (*domain.User, error)

	// ChangePassword replaces the caller's own password after verifying the
	// current one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// EnsureBootstrapAdmin creates the initial admin account when the users
	// table is empty, so a fresh deployment has someone who can log in.
	EnsureBootstrapAdmin(ctx context.Context, name, email, password string) error
}

// AuthSvc verifies credentials and manages the refresh-token lifecycle.
type AuthSvc interface {
	// AuthenticateUser checks email/password and returns the user when the
	// credentials match an active account.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// RefreshSession rotates the refresh token and returns the user it
	// belonged to.
	RefreshSession(ctx context.Context, userID string, refreshToken string) (*domain.User, error)

	// Logout clears the stored refresh token.
	Logout(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthSvc
}
