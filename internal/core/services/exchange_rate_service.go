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
	"github.com/lancarbooks/lancar_backend/internal/rateprovider"
)

// RatesFetcher retrieves the latest rate table from the external provider.
type RatesFetcher interface {
	FetchLatest(ctx context.Context) (*rateprovider.Result, error)
}

// exchangeRateService stores exchange rates and refreshes them from the
// provider. Concurrent refreshes are safe: rows are upserted per pair,
// last-write-wins.
type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.CurrencyRateRepository
	settingsRepo portsrepo.SettingsRepository
	fetcher      RatesFetcher
	now          func() time.Time
}

// NewExchangeRateService creates the exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.CurrencyRateRepository, settingsRepo portsrepo.SettingsRepository, fetcher RatesFetcher) *exchangeRateService {
	return &exchangeRateService{
		rateRepo:     rateRepo,
		settingsRepo: settingsRepo,
		fetcher:      fetcher,
		now:          time.Now,
	}
}

func (s *exchangeRateService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rates")
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

func (s *exchangeRateService) GetRate(ctx context.Context, fromCode, toCode string) (*domain.CurrencyRate, error) {
	rate, err := s.rateRepo.FindRate(ctx, fromCode, toCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find rate", slog.String("from", fromCode), slog.String("to", toCode))
		}
		return nil, err
	}
	return rate, nil
}

// RefreshRates pulls the provider's latest quotes and upserts every ordered
// pair among the tracked currencies (the company base plus its display
// currencies). Cross rates are derived through the provider's base:
// rate(a->b) = quote(b) / quote(a).
func (s *exchangeRateService) RefreshRates(ctx context.Context) (*dto.RefreshRatesResponse, error) {
	tracked, err := s.trackedCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.fetcher.FetchLatest(ctx)
	if err != nil {
		s.LogError(ctx, err, "Rate provider fetch failed")
		return nil, err
	}

	refreshedAt := s.now()
	updated := 0
	for _, from := range tracked {
		fromQuote, ok := result.Rates[from]
		if !ok || fromQuote.IsZero() {
			s.LogDebug(ctx, "Provider has no quote for currency", slog.String("currency_code", from))
			continue
		}
		for _, to := range tracked {
			if from == to {
				continue
			}
			toQuote, ok := result.Rates[to]
			if !ok {
				continue
			}

			rate := domain.CurrencyRate{
				RateID:        uuid.NewString(),
				FromCode:      from,
				ToCode:        to,
				Rate:          toQuote.Div(fromQuote),
				LastUpdatedAt: refreshedAt,
			}
			if err := s.rateRepo.UpsertRate(ctx, rate); err != nil {
				s.LogError(ctx, err, "Failed to upsert rate", slog.String("from", from), slog.String("to", to))
				return nil, err
			}
			updated++
		}
	}

	s.LogInfo(ctx, "Rates refreshed", slog.Int("updated", updated), slog.Int("attempts", result.Attempts))
	return &dto.RefreshRatesResponse{
		Updated:     updated,
		Attempts:    result.Attempts,
		RefreshedAt: refreshedAt,
	}, nil
}

// trackedCurrencies returns the base currency plus display currencies from
// the company settings, deduplicated, with a USD/IDR fallback when settings
// were never saved.
func (s *exchangeRateService) trackedCurrencies(ctx context.Context) ([]string, error) {
	settings, err := s.settingsRepo.GetCompanySettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []string{"USD", "IDR"}, nil
		}
		return nil, err
	}

	seen := make(map[string]bool)
	var tracked []string
	for _, code := range append([]string{settings.BaseCurrencyCode}, settings.DisplayCurrencies...) {
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		tracked = append(tracked, code)
	}
	return tracked, nil
}
