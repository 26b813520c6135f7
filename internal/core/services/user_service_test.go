package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/core/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/models"
	"github.com/lancarbooks/lancar_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	adminID  string
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockRepo)
	s.adminID = uuid.NewString()
}

func (s *UserServiceTestSuite) expectAdmin() {
	s.mockRepo.On("FindUserByID", mock.Anything, s.adminID).Return(&domain.User{
		UserID:   s.adminID,
		Role:     domain.RoleAdmin,
		IsActive: true,
	}, nil)
}

func (s *UserServiceTestSuite) userModel(password string, active bool) *models.User {
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)
	return &models.User{
		UserID:       uuid.NewString(),
		Name:         "Budi",
		Email:        "budi@example.com",
		PasswordHash: hash,
		Role:         string(domain.RoleStaff),
		IsActive:     active,
	}
}

func (s *UserServiceTestSuite) TestCreateUser_RequiresAdmin() {
	ctx := context.Background()
	staffID := uuid.NewString()
	s.mockRepo.On("FindUserByID", mock.Anything, staffID).Return(&domain.User{
		UserID: staffID, Role: domain.RoleStaff, IsActive: true,
	}, nil).Once()

	_, err := s.service.CreateUser(ctx, dto.CreateUserRequest{
		Name: "X", Email: "x@example.com", Password: "password123", Role: domain.RoleStaff,
	}, staffID)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestCreateUser_StoresHashedPassword() {
	ctx := context.Background()
	s.expectAdmin()
	s.mockRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "x@example.com" && u.IsActive
	}), mock.MatchedBy(func(hash string) bool {
		return hash != "password123" && utils.CheckPasswordHash("password123", hash)
	})).Return(nil).Once()

	user, err := s.service.CreateUser(ctx, dto.CreateUserRequest{
		Name: "X", Email: "x@example.com", Password: "password123", Role: domain.RoleStaff,
	}, s.adminID)

	s.NoError(err)
	s.NotEmpty(user.UserID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestEnsureBootstrapAdmin_EmptyTableCreatesAdmin() {
	ctx := context.Background()
	s.mockRepo.On("CountUsers", mock.Anything).Return(int64(0), nil).Once()
	s.mockRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "admin@example.com" && u.Role == domain.RoleAdmin && u.IsActive
	}), mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("rahasia-awal", hash)
	})).Return(nil).Once()

	err := s.service.EnsureBootstrapAdmin(ctx, "Administrator", "admin@example.com", "rahasia-awal")

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestEnsureBootstrapAdmin_ExistingUsersNoop() {
	ctx := context.Background()
	s.mockRepo.On("CountUsers", mock.Anything).Return(int64(3), nil).Once()

	err := s.service.EnsureBootstrapAdmin(ctx, "Administrator", "admin@example.com", "rahasia-awal")

	s.NoError(err)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestEnsureBootstrapAdmin_MissingCredentials() {
	ctx := context.Background()
	s.mockRepo.On("CountUsers", mock.Anything).Return(int64(0), nil).Once()

	err := s.service.EnsureBootstrapAdmin(ctx, "Administrator", "", "")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestEnsureBootstrapAdmin_LostRaceTreatedAsDone() {
	ctx := context.Background()
	s.mockRepo.On("CountUsers", mock.Anything).Return(int64(0), nil).Once()
	s.mockRepo.On("SaveUser", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	err := s.service.EnsureBootstrapAdmin(ctx, "Administrator", "admin@example.com", "rahasia-awal")

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	model := s.userModel("rahasia-123", true)
	s.mockRepo.On("FindUserByEmail", mock.Anything, model.Email).Return(model, nil).Once()

	user, err := s.service.AuthenticateUser(ctx, model.Email, "rahasia-123")

	s.NoError(err)
	s.Equal(model.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	model := s.userModel("rahasia-123", true)
	s.mockRepo.On("FindUserByEmail", mock.Anything, model.Email).Return(model, nil).Once()

	_, err := s.service.AuthenticateUser(ctx, model.Email, "salah")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailSameError() {
	ctx := context.Background()
	s.mockRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.AuthenticateUser(ctx, "ghost@example.com", "whatever")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_InactiveForbidden() {
	ctx := context.Background()
	model := s.userModel("rahasia-123", false)
	s.mockRepo.On("FindUserByEmail", mock.Anything, model.Email).Return(model, nil).Once()

	_, err := s.service.AuthenticateUser(ctx, model.Email, "rahasia-123")

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestSetUserActive_CannotDeactivateSelf() {
	ctx := context.Background()
	s.expectAdmin()

	_, err := s.service.SetUserActive(ctx, s.adminID, false, s.adminID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SetUserActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestSetUserActive_DeactivationClearsRefreshToken() {
	ctx := context.Background()
	targetID := uuid.NewString()
	s.expectAdmin()
	s.mockRepo.On("SetUserActive", mock.Anything, targetID, false, s.adminID, mock.Anything).Return(nil).Once()
	s.mockRepo.On("ClearRefreshToken", mock.Anything, targetID).Return(nil).Once()
	s.mockRepo.On("FindUserByID", mock.Anything, targetID).Return(&domain.User{UserID: targetID, IsActive: false}, nil).Once()

	user, err := s.service.SetUserActive(ctx, targetID, false, s.adminID)

	s.NoError(err)
	s.False(user.IsActive)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	model := s.userModel("lama-123", true)
	s.mockRepo.On("FindUserModelByID", mock.Anything, model.UserID).Return(model, nil).Once()

	err := s.service.ChangePassword(ctx, model.UserID, dto.ChangePasswordRequest{
		CurrentPassword: "bukan-itu",
		NewPassword:     "baru-12345",
	})

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.mockRepo.AssertNotCalled(s.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestRefreshSession_ValidToken() {
	ctx := context.Background()
	model := s.userModel("pw", true)
	raw := "opaque-refresh-token"
	model.RefreshTokenHash.Valid = true
	model.RefreshTokenHash.String = utils.HashSecret(raw)
	model.RefreshTokenExpiryTime.Valid = true
	model.RefreshTokenExpiryTime.Time = timeInFuture()

	s.mockRepo.On("FindUserModelByID", mock.Anything, model.UserID).Return(model, nil).Once()

	user, err := s.service.RefreshSession(ctx, model.UserID, raw)

	s.NoError(err)
	s.Equal(model.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestRefreshSession_MismatchedToken() {
	ctx := context.Background()
	model := s.userModel("pw", true)
	model.RefreshTokenHash.Valid = true
	model.RefreshTokenHash.String = utils.HashSecret("stored-token")
	model.RefreshTokenExpiryTime.Valid = true
	model.RefreshTokenExpiryTime.Time = timeInFuture()

	s.mockRepo.On("FindUserModelByID", mock.Anything, model.UserID).Return(model, nil).Once()

	_, err := s.service.RefreshSession(ctx, model.UserID, "different-token")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func timeInFuture() time.Time {
	return time.Now().Add(time.Hour)
}
