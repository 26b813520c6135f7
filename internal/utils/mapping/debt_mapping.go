package mapping

import (
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/models"
)

// ToModelDebt converts a domain DebtReceivable to a model DebtReceivable
func ToModelDebt(d domain.DebtReceivable) models.DebtReceivable {
	return models.DebtReceivable{
		DebtID:       d.DebtID,
		DebtType:     models.DebtType(d.DebtType),
		Counterparty: d.Counterparty,
		Amount:       d.Amount,
		DueDate:      d.DueDate,
		Status:       models.DebtStatus(d.Status),
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model DebtReceivable to a domain DebtReceivable
func ToDomainDebt(m models.DebtReceivable) domain.DebtReceivable {
	return domain.DebtReceivable{
		DebtID:       m.DebtID,
		DebtType:     domain.DebtType(m.DebtType),
		Counterparty: m.Counterparty,
		Amount:       m.Amount,
		DueDate:      m.DueDate,
		Status:       domain.DebtStatus(m.Status),
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebtSlice converts a slice of model DebtReceivables to domain DebtReceivables
func ToDomainDebtSlice(ms []models.DebtReceivable) []domain.DebtReceivable {
	ds := make([]domain.DebtReceivable, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}
