package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/core/services"
	"github.com/lancarbooks/lancar_backend/internal/rateprovider"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockRateRepository
	mockSettingsRepo *MockSettingsRepository
	mockFetcher      *MockRatesFetcher
	service          portssvc.CurrencyRateSvcFacade
}

func (s *ExchangeRateServiceTestSuite) SetupTest() {
	s.mockRateRepo = new(MockRateRepository)
	s.mockSettingsRepo = new(MockSettingsRepository)
	s.mockFetcher = new(MockRatesFetcher)
	s.service = services.NewExchangeRateService(s.mockRateRepo, s.mockSettingsRepo, s.mockFetcher)
}

func (s *ExchangeRateServiceTestSuite) TestRefreshRates_DerivesCrossPairs() {
	ctx := context.Background()

	s.mockSettingsRepo.On("GetCompanySettings", mock.Anything).Return(&domain.CompanySettings{
		BaseCurrencyCode:  "IDR",
		DisplayCurrencies: []string{"USD"},
	}, nil).Once()
	s.mockFetcher.On("FetchLatest", mock.Anything).Return(&rateprovider.Result{
		BaseCode: "USD",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"IDR": decimal.NewFromInt(16000),
		},
		Attempts: 1,
	}, nil).Once()

	var upserted []domain.CurrencyRate
	s.mockRateRepo.On("UpsertRate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		upserted = append(upserted, args.Get(1).(domain.CurrencyRate))
	}).Return(nil).Times(2)

	result, err := s.service.RefreshRates(ctx)

	s.NoError(err)
	s.Equal(2, result.Updated)
	s.Equal(1, result.Attempts)

	byPair := make(map[string]decimal.Decimal)
	for _, rate := range upserted {
		byPair[rate.FromCode+"/"+rate.ToCode] = rate.Rate
	}
	s.True(byPair["USD/IDR"].Equal(decimal.NewFromInt(16000)))
	s.True(byPair["IDR/USD"].Equal(decimal.NewFromInt(1).Div(decimal.NewFromInt(16000))))
}

func (s *ExchangeRateServiceTestSuite) TestRefreshRates_DefaultsWithoutSettings() {
	ctx := context.Background()

	s.mockSettingsRepo.On("GetCompanySettings", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.mockFetcher.On("FetchLatest", mock.Anything).Return(&rateprovider.Result{
		BaseCode: "USD",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"IDR": decimal.NewFromInt(16000),
		},
		Attempts: 2,
	}, nil).Once()
	s.mockRateRepo.On("UpsertRate", mock.Anything, mock.Anything).Return(nil).Times(2)

	result, err := s.service.RefreshRates(ctx)

	s.NoError(err)
	s.Equal(2, result.Updated)
	s.Equal(2, result.Attempts)
}

func (s *ExchangeRateServiceTestSuite) TestRefreshRates_MissingQuoteSkipped() {
	ctx := context.Background()

	s.mockSettingsRepo.On("GetCompanySettings", mock.Anything).Return(&domain.CompanySettings{
		BaseCurrencyCode:  "IDR",
		DisplayCurrencies: []string{"USD", "XYZ"},
	}, nil).Once()
	s.mockFetcher.On("FetchLatest", mock.Anything).Return(&rateprovider.Result{
		BaseCode: "USD",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"IDR": decimal.NewFromInt(16000),
		},
		Attempts: 1,
	}, nil).Once()
	s.mockRateRepo.On("UpsertRate", mock.Anything, mock.Anything).Return(nil).Times(2)

	result, err := s.service.RefreshRates(ctx)

	s.NoError(err)
	// Only IDR<->USD; XYZ has no provider quote.
	s.Equal(2, result.Updated)
}

func (s *ExchangeRateServiceTestSuite) TestRefreshRates_ProviderFailurePropagates() {
	ctx := context.Background()
	providerErr := errors.New("rate provider unavailable after 3 attempts")

	s.mockSettingsRepo.On("GetCompanySettings", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	s.mockFetcher.On("FetchLatest", mock.Anything).Return(nil, providerErr).Once()

	_, err := s.service.RefreshRates(ctx)

	s.ErrorIs(err, providerErr)
	s.mockRateRepo.AssertNotCalled(s.T(), "UpsertRate", mock.Anything, mock.Anything)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
