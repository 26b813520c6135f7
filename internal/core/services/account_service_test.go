package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/core/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockAccountRepository
	mockUserRepo *MockUserRepository
	service      portssvc.AccountSvcFacade
	adminID      string
	staffID      string
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAccountRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewAccountService(s.mockRepo, s.mockUserRepo)
	s.adminID = uuid.NewString()
	s.staffID = uuid.NewString()
}

func (s *AccountServiceTestSuite) expectRole(userID string, role domain.UserRole) {
	s.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(&domain.User{
		UserID:   userID,
		Role:     role,
		IsActive: true,
	}, nil)
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "1-1001",
		Name:         "Kas",
		AccountType:  domain.Asset,
		CurrencyCode: "IDR",
	}

	s.mockRepo.On("SaveAccount", mock.Anything, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Code == "1-1001" && acc.AccountType == domain.Asset && acc.IsActive
	})).Return(nil).Once()

	account, err := s.service.CreateAccount(ctx, req, s.adminID)

	s.NoError(err)
	s.NotEmpty(account.AccountID)
	s.Equal("Kas", account.Name)
	s.True(account.IsActive)
	s.Equal(s.adminID, account.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1-1001", Name: "Kas", AccountType: domain.Asset, CurrencyCode: "IDR"}

	s.mockRepo.On("SaveAccount", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.CreateAccount(ctx, req, s.adminID)

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_BlockedWhenReferenced() {
	ctx := context.Background()
	accountID := uuid.NewString()
	s.expectRole(s.adminID, domain.RoleAdmin)
	s.mockRepo.On("DeleteAccount", mock.Anything, accountID).Return(apperrors.ErrConflict).Once()

	err := s.service.DeleteAccount(ctx, accountID, s.adminID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.Contains(err.Error(), "cannot be deleted")
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeleteAccount_RequiresAdmin() {
	ctx := context.Background()
	s.expectRole(s.staffID, domain.RoleStaff)

	err := s.service.DeleteAccount(ctx, uuid.NewString(), s.staffID)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_Unreferenced() {
	ctx := context.Background()
	accountID := uuid.NewString()
	s.expectRole(s.adminID, domain.RoleAdmin)
	s.mockRepo.On("DeleteAccount", mock.Anything, accountID).Return(nil).Once()

	err := s.service.DeleteAccount(ctx, accountID, s.adminID)

	s.NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestExportAccountsCSV_ColumnOrder() {
	ctx := context.Background()
	accounts := []domain.Account{
		{
			AccountID:    uuid.NewString(),
			Code:         "1-1001",
			Name:         "Kas",
			AccountType:  domain.Asset,
			CurrencyCode: "IDR",
			Balance:      decimal.RequireFromString("1500000"),
			IsActive:     true,
		},
		{
			AccountID:    uuid.NewString(),
			Code:         "4-1001",
			Name:         "Penjualan",
			AccountType:  domain.Revenue,
			CurrencyCode: "IDR",
			Balance:      decimal.Zero,
			IsActive:     false,
		},
	}
	s.mockRepo.On("ListAccounts", mock.Anything, mock.Anything).Return(accounts, nil).Once()

	data, err := s.service.ExportAccountsCSV(ctx, dto.ListAccountsParams{})

	s.NoError(err)
	lines := string(data)
	s.Contains(lines, "code,name,type,currency_code,balance,is_active\n")
	s.Contains(lines, "1-1001,Kas,ASSET,IDR,1500000,true\n")
	s.Contains(lines, "4-1001,Penjualan,REVENUE,IDR,0,false\n")
}

func (s *AccountServiceTestSuite) TestExportAccountsCSV_RowCountMatchesFilter() {
	ctx := context.Background()
	accounts := []domain.Account{
		{Code: "1-1001", Name: "Kas", AccountType: domain.Asset, IsActive: true},
	}
	s.mockRepo.On("ListAccounts", mock.Anything, mock.MatchedBy(func(f portsrepo.AccountFilter) bool {
		return f.ActiveOnly
	})).Return(accounts, nil).Once()

	data, err := s.service.ExportAccountsCSV(ctx, dto.ListAccountsParams{ActiveOnly: true})

	s.NoError(err)
	// header + one row + trailing newline
	s.Len(splitLines(string(data)), 2)
}

func (s *AccountServiceTestSuite) TestListAccounts_EmptyResult() {
	ctx := context.Background()
	s.mockRepo.On("ListAccounts", mock.Anything, mock.Anything).Return(nil, nil).Once()

	accounts, err := s.service.ListAccounts(ctx, dto.ListAccountsParams{})

	s.NoError(err)
	s.NotNil(accounts)
	s.Empty(accounts)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		Code:        "1-1001",
		Name:        "Kas",
		AccountType: domain.Asset,
		Description: "petty cash",
		IsActive:    true,
	}
	newName := "Kas Besar"

	s.mockRepo.On("FindAccountByID", mock.Anything, accountID).Return(existing, nil).Once()
	s.mockRepo.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == "Kas Besar" && acc.Description == "petty cash"
	})).Return(nil).Once()

	account, err := s.service.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{Name: &newName}, s.adminID)

	s.NoError(err)
	s.Equal("Kas Besar", account.Name)
	s.Equal("petty cash", account.Description)
	s.mockRepo.AssertExpectations(s.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

// splitLines splits CSV output into non-empty lines.
func splitLines(data string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			if i > start {
				lines = append(lines, data[start:i])
			}
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
