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
)

type APIKeyServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockAPIKeyRepository
	mockUserRepo *MockUserRepository
	service      portssvc.APIKeySvcFacade
	adminID      string
	staffID      string
}

func (s *APIKeyServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAPIKeyRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewAPIKeyService(s.mockRepo, s.mockUserRepo)
	s.adminID = uuid.NewString()
	s.staffID = uuid.NewString()
}

func (s *APIKeyServiceTestSuite) expectRole(userID string, role domain.UserRole) {
	s.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(&domain.User{
		UserID:   userID,
		Role:     role,
		IsActive: true,
	}, nil)
}

func (s *APIKeyServiceTestSuite) TestCreateAPIKey_AdminSuccess() {
	ctx := context.Background()
	s.expectRole(s.adminID, domain.RoleAdmin)

	var storedHash string
	s.mockRepo.On("SaveAPIKey", mock.Anything, mock.MatchedBy(func(key domain.APIKey) bool {
		storedHash = key.KeyHash
		return key.UserID == s.adminID && key.Name == "nightly-sync"
	})).Return(nil).Once()

	resp, err := s.service.CreateAPIKey(ctx, dto.CreateAPIKeyRequest{Name: "nightly-sync"}, s.adminID)

	s.NoError(err)
	s.NotEmpty(resp.Secret)
	s.NotEqual(resp.Secret, storedHash)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *APIKeyServiceTestSuite) TestCreateAPIKey_StaffForbidden() {
	ctx := context.Background()
	s.expectRole(s.staffID, domain.RoleStaff)

	_, err := s.service.CreateAPIKey(ctx, dto.CreateAPIKeyRequest{Name: "nightly-sync"}, s.staffID)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "SaveAPIKey")
}

func (s *APIKeyServiceTestSuite) TestCreateAPIKey_ExpiredDateRejected() {
	ctx := context.Background()
	s.expectRole(s.adminID, domain.RoleAdmin)

	past := time.Now().Add(-time.Hour)
	_, err := s.service.CreateAPIKey(ctx, dto.CreateAPIKeyRequest{Name: "old", ExpiresAt: &past}, s.adminID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveAPIKey")
}

func (s *APIKeyServiceTestSuite) TestRevokeAPIKey_StaffForbidden() {
	ctx := context.Background()
	s.expectRole(s.staffID, domain.RoleStaff)

	err := s.service.RevokeAPIKey(ctx, uuid.NewString(), s.staffID)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "RevokeAPIKey")
}

func (s *APIKeyServiceTestSuite) TestRevokeAPIKey_AdminOwnedKey() {
	ctx := context.Background()
	s.expectRole(s.adminID, domain.RoleAdmin)

	keyID := uuid.NewString()
	s.mockRepo.On("ListAPIKeys", mock.Anything, s.adminID).
		Return([]domain.APIKey{{KeyID: keyID, UserID: s.adminID}}, nil).Once()
	s.mockRepo.On("RevokeAPIKey", mock.Anything, keyID, mock.Anything).Return(nil).Once()

	err := s.service.RevokeAPIKey(ctx, keyID, s.adminID)

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *APIKeyServiceTestSuite) TestRevokeAPIKey_NotOwned() {
	ctx := context.Background()
	s.expectRole(s.adminID, domain.RoleAdmin)

	s.mockRepo.On("ListAPIKeys", mock.Anything, s.adminID).Return([]domain.APIKey{}, nil).Once()

	err := s.service.RevokeAPIKey(ctx, uuid.NewString(), s.adminID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "RevokeAPIKey")
}

func (s *APIKeyServiceTestSuite) TestCreateAPIKey_NoRoleSourceDenied() {
	ctx := context.Background()
	svc := services.NewAPIKeyService(s.mockRepo, nil)

	_, err := svc.CreateAPIKey(ctx, dto.CreateAPIKeyRequest{Name: "nightly-sync"}, s.adminID)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "SaveAPIKey")
}

func TestAPIKeyService(t *testing.T) {
	suite.Run(t, new(APIKeyServiceTestSuite))
}
