package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// CurrencyRateResponse defines the data returned for a stored exchange rate.
type CurrencyRateResponse struct {
	FromCode      string          `json:"fromCode"`
	ToCode        string          `json:"toCode"`
	Rate          decimal.Decimal `json:"rate"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// RefreshRatesResponse summarizes a completed provider refresh.
type RefreshRatesResponse struct {
	Updated     int       `json:"updated"`
	Attempts    int       `json:"attempts"`
	RefreshedAt time.Time `json:"refreshedAt"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(&c)
	}
	return res
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to a DTO
func ToCurrencyRateResponse(r *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		FromCode:      r.FromCode,
		ToCode:        r.ToCode,
		Rate:          r.Rate,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// ToListCurrencyRateResponse converts a slice of domain.CurrencyRate to DTOs
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToCurrencyRateResponse(&r)
	}
	return res
}
