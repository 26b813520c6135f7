package repositories

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// CurrencyRepository defines operations for static currency data
type CurrencyRepository interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// FindCurrencyByCode retrieves a currency by its ISO code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRateRepository defines operations for the exchange-rate table
type CurrencyRateRepository interface {
	// UpsertRate inserts or replaces the rate for a (from, to) pair.
	// Concurrent refreshes are last-write-wins per pair.
	UpsertRate(ctx context.Context, rate domain.CurrencyRate) error

	// FindRate retrieves the rate for a (from, to) pair.
	FindRate(ctx context.Context, fromCode, toCode string) (*domain.CurrencyRate, error)

	// ListRates retrieves the full rate table ordered by pair.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)
}
