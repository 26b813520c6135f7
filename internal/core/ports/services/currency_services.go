package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// CurrencySvcFacade serves the static currency catalogue.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a currency by its ISO 4217 code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRateSvcFacade manages stored exchange rates and their refresh.
type CurrencyRateSvcFacade interface {
	// ListRates retrieves all stored rate pairs.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// GetRate retrieves the stored rate for a from/to pair.
	GetRate(ctx context.Context, fromCode, toCode string) (*domain.CurrencyRate, error)

	// RefreshRates fetches fresh rates from the external provider, derives the
	// cross pairs and upserts them. Transient provider failures are retried a
	// bounded number of times before the call fails.
	RefreshRates(ctx context.Context) (*dto.RefreshRatesResponse, error)
}
