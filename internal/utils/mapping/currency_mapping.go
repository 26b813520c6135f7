package mapping

import (
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		Precision:    d.Precision,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Precision:    m.Precision,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		RateID:        d.RateID,
		FromCode:      d.FromCode,
		ToCode:        d.ToCode,
		Rate:          d.Rate,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		RateID:        m.RateID,
		FromCode:      m.FromCode,
		ToCode:        m.ToCode,
		Rate:          m.Rate,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToDomainCurrencyRateSlice converts a slice of model CurrencyRates to domain CurrencyRates
func ToDomainCurrencyRateSlice(ms []models.CurrencyRate) []domain.CurrencyRate {
	ds := make([]domain.CurrencyRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyRate(m)
	}
	return ds
}
