package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/utils"
	"github.com/lancarbooks/lancar_backend/internal/utils/mapping"
)

// userService manages users and credential verification. Users are never
// deleted; the active flag gates login instead.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *userService {
	return &userService{
		BaseService: BaseService{UserRepo: userRepo},
		userRepo:    userRepo,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, callerID string) (*domain.User, error) {
	if err := s.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:   uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     callerID,
			LastUpdatedAt: now,
			LastUpdatedBy: callerID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, passwordHash); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email %q already registered: %w", req.Email, err)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("new_user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// EnsureBootstrapAdmin creates the initial admin account on an empty users
// table. CreateUser requires an existing admin, so without this a fresh
// deployment has no way to add its first user. No-op once any user exists.
func (s *userService) EnsureBootstrapAdmin(ctx context.Context, name, email, password string) error {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users during bootstrap")
		return err
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		return fmt.Errorf("bootstrap admin email and password must be set on first start: %w", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash bootstrap admin password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	adminID := uuid.NewString()
	admin := domain.User{
		UserID:   adminID,
		Name:     name,
		Email:    email,
		Role:     domain.RoleAdmin,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, admin, passwordHash); err != nil {
		// A concurrent starter may have won the race; treat that as done.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		s.LogError(ctx, err, "Failed to save bootstrap admin")
		return err
	}

	s.LogInfo(ctx, "Bootstrap admin created", slog.String("new_user_id", admin.UserID), slog.String("email", email))
	return nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, callerID string) (*domain.User, error) {
	// Role changes are admin-only; users may edit their own name and email.
	if req.Role != nil || userID != callerID {
		if err := s.RequireAdmin(ctx, callerID); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = callerID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered: %w", err)
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("target_user_id", userID))
	return user, nil
}

func (s *userService) SetUserActive(ctx context.Context, userID string, isActive bool, callerID string) (*domain.User, error) {
	if err := s.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	if userID == callerID && !isActive {
		return nil, fmt.Errorf("cannot deactivate your own account: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	if err := s.userRepo.SetUserActive(ctx, userID, isActive, callerID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to set user active flag", slog.String("target_user_id", userID))
		}
		return nil, err
	}
	if !isActive {
		// A deactivated user's session must not outlive the flag.
		if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
			s.LogError(ctx, err, "Failed to clear refresh token on deactivation", slog.String("target_user_id", userID))
		}
	}

	s.LogInfo(ctx, "User active flag set", slog.String("target_user_id", userID), slog.Bool("is_active", isActive))
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	model, err := s.userRepo.FindUserModelByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, model.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, newHash, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update password hash")
		return err
	}

	s.LogInfo(ctx, "Password changed")
	return nil
}

// AuthenticateUser verifies credentials against the stored bcrypt hash. The
// same error is returned for a missing user and a wrong password so login
// responses do not leak which emails exist.
func (s *userService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	model, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, model.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	if !model.IsActive {
		return nil, fmt.Errorf("account is deactivated: %w", apperrors.ErrForbidden)
	}

	user := mapping.ToDomainUser(*model)
	s.LogInfo(ctx, "User authenticated", slog.String("auth_user_id", user.UserID))
	return &user, nil
}

// RefreshSession validates the presented refresh token against the stored
// hash and expiry, then leaves rotation to the token service.
func (s *userService) RefreshSession(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	model, err := s.userRepo.FindUserModelByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !model.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	if !model.RefreshTokenHash.Valid || !model.RefreshTokenExpiryTime.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	if model.RefreshTokenExpiryTime.Time.Before(time.Now()) {
		return nil, apperrors.ErrUnauthorized
	}
	if utils.HashSecret(refreshToken) != model.RefreshTokenHash.String {
		return nil, apperrors.ErrUnauthorized
	}

	user := mapping.ToDomainUser(*model)
	return &user, nil
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token")
		return err
	}
	s.LogInfo(ctx, "User logged out")
	return nil
}
