package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the currencies row shape.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	Precision    int    `db:"precision"`
	AuditFields
}

// CurrencyRate is the currency_rates row shape, keyed (from_code, to_code).
type CurrencyRate struct {
	RateID        string          `db:"rate_id"`
	FromCode      string          `db:"from_code"`
	ToCode        string          `db:"to_code"`
	Rate          decimal.Decimal `db:"rate"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
