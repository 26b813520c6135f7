package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// LedgerSvcFacade builds the per-account running-balance view.
type LedgerSvcFacade interface {
	// GetLedger returns the account's transactions in chronological order with
	// a running balance attached to each entry.
	GetLedger(ctx context.Context, accountID string, params dto.LedgerParams) (*domain.LedgerView, error)
}
