package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported display currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary key (e.g. "IDR")
	Symbol       string `json:"symbol"`       // e.g. "Rp"
	Name         string `json:"name"`         // e.g. "Indonesian Rupiah"
	Precision    int    `json:"precision"`    // Decimal places for display
	AuditFields
}

// CurrencyRate is one row of the exchange-rate table, keyed by the
// (FromCode, ToCode) pair. Rows are upserted by the refresh operation;
// concurrent refreshes are last-write-wins per pair.
type CurrencyRate struct {
	RateID        string          `json:"rateID"` // Primary key (UUID)
	FromCode      string          `json:"fromCode"`
	ToCode        string          `json:"toCode"`
	Rate          decimal.Decimal `json:"rate"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
