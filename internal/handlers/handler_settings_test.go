package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/middleware"
)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetCompanySettings(ctx context.Context) (*domain.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

func (m *MockSettingsService) UpdateCompanySettings(ctx context.Context, req dto.UpdateCompanySettingsRequest, userID string) (*domain.CompanySettings, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

func (m *MockSettingsService) GetAppSettings(ctx context.Context, userID string) (*domain.AppSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) SaveAppSettings(ctx context.Context, userID string, req dto.SaveAppSettingsRequest) (*domain.AppSettings, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Test Suite ---
type SettingsHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockSettingsService *MockSettingsService
	jwtSecret           string
	userID              string
}

func (suite *SettingsHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "lancar-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSettingsService = new(MockSettingsService)

	v1 := suite.router.Group("/api/v1")
	registerSettingsRoutes(v1, suite.mockSettingsService)
}

func (suite *SettingsHandlerTestSuite) doRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testCompanySettings() *domain.CompanySettings {
	s := &domain.CompanySettings{
		CompanyName:       "Toko Maju",
		Address:           "Jl. Sudirman 1",
		TaxID:             "01.234.567.8-901.000",
		TaxRate:           decimal.NewFromFloat(0.005),
		BaseCurrencyCode:  "IDR",
		DisplayCurrencies: []string{"USD"},
	}
	s.LastUpdatedAt = time.Now()
	return s
}

// --- Test Cases ---

func (suite *SettingsHandlerTestSuite) TestUpdateCompanySettings_Success() {
	expected := testCompanySettings()

	suite.mockSettingsService.On("UpdateCompanySettings",
		mock.Anything,
		mock.MatchedBy(func(r dto.UpdateCompanySettingsRequest) bool {
			return r.CompanyName == "Toko Maju" && r.BaseCurrencyCode == "IDR"
		}),
		suite.userID,
	).Return(expected, nil).Once()

	body := `{"companyName":"Toko Maju","address":"Jl. Sudirman 1","taxID":"01.234.567.8-901.000","taxRate":"0.005","baseCurrencyCode":"IDR","displayCurrencies":["USD"]}`
	w := suite.doRequest(http.MethodPut, "/api/v1/settings/company", strings.NewReader(body))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CompanySettingsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Toko Maju", resp.CompanyName)
	suite.mockSettingsService.AssertExpectations(suite.T())
}

func (suite *SettingsHandlerTestSuite) TestUpdateCompanySettings_UnknownKeyRejected() {
	body := `{"companyName":"Toko Maju","baseCurrencyCode":"IDR","companyMotto":"onward"}`
	w := suite.doRequest(http.MethodPut, "/api/v1/settings/company", strings.NewReader(body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "companyMotto")
	suite.mockSettingsService.AssertNotCalled(suite.T(), "UpdateCompanySettings")
}

func (suite *SettingsHandlerTestSuite) TestUpdateCompanySettings_MissingRequiredField() {
	body := `{"address":"Jl. Sudirman 1","baseCurrencyCode":"IDR"}`
	w := suite.doRequest(http.MethodPut, "/api/v1/settings/company", strings.NewReader(body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSettingsService.AssertNotCalled(suite.T(), "UpdateCompanySettings")
}

func (suite *SettingsHandlerTestSuite) TestUpdateCompanySettings_Forbidden() {
	suite.mockSettingsService.On("UpdateCompanySettings", mock.Anything, mock.Anything, suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	body := `{"companyName":"Toko Maju","baseCurrencyCode":"IDR"}`
	w := suite.doRequest(http.MethodPut, "/api/v1/settings/company", strings.NewReader(body))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSettingsService.AssertExpectations(suite.T())
}

func (suite *SettingsHandlerTestSuite) TestSaveAppSettings_Success() {
	saved := &domain.AppSettings{
		UserID:           suite.userID,
		Theme:            domain.ThemeDark,
		SidebarCollapsed: true,
		Language:         "id",
		DateFormat:       "02/01/2006",
	}

	suite.mockSettingsService.On("SaveAppSettings",
		mock.Anything,
		suite.userID,
		mock.MatchedBy(func(r dto.SaveAppSettingsRequest) bool {
			return r.Theme == domain.ThemeDark && r.SidebarCollapsed
		}),
	).Return(saved, nil).Once()

	body := `{"theme":"DARK","sidebarCollapsed":true,"language":"id","dateFormat":"02/01/2006"}`
	w := suite.doRequest(http.MethodPut, "/api/v1/settings/app", strings.NewReader(body))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AppSettingsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ThemeDark, resp.Theme)
	suite.mockSettingsService.AssertExpectations(suite.T())
}

func (suite *SettingsHandlerTestSuite) TestSaveAppSettings_UnknownKeyRejected() {
	body := `{"theme":"DARK","sidebarCollapsed":true,"language":"id","dateFormat":"02/01/2006","fontSize":14}`
	w := suite.doRequest(http.MethodPut, "/api/v1/settings/app", strings.NewReader(body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "fontSize")
	suite.mockSettingsService.AssertNotCalled(suite.T(), "SaveAppSettings")
}

func (suite *SettingsHandlerTestSuite) TestSaveAppSettings_InvalidTheme() {
	body := `{"theme":"NEON","sidebarCollapsed":false,"language":"id","dateFormat":"02/01/2006"}`
	w := suite.doRequest(http.MethodPut, "/api/v1/settings/app", strings.NewReader(body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSettingsService.AssertNotCalled(suite.T(), "SaveAppSettings")
}

func (suite *SettingsHandlerTestSuite) TestGetAppSettings_Defaults() {
	defaults := domain.DefaultAppSettings(suite.userID)
	suite.mockSettingsService.On("GetAppSettings", mock.Anything, suite.userID).
		Return(&defaults, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/settings/app", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AppSettingsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ThemeSystem, resp.Theme)
	suite.mockSettingsService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSettingsHandler(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}
