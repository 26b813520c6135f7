package services

import (
	"context"
	"log/slog"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	UserRepo portsrepo.UserReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdmin checks that the caller holds the admin role and is active.
// A service without a user repository cannot verify roles and denies.
func (s *BaseService) RequireAdmin(ctx context.Context, userID string) error {
	if s.UserRepo == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "Role check without a user repository", slog.String("user_id", userID))
		return apperrors.ErrForbidden
	}
	user, err := s.UserRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsActive || user.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}
