package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// PartySvcFacade manages customers and suppliers. The kind argument selects
// which collection an operation targets.
type PartySvcFacade interface {
	// GetPartyByID retrieves a specific customer or supplier.
	GetPartyByID(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties of the given kind.
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)

	// CreateParty persists a new customer or supplier.
	CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, userID string) (*domain.Party, error)

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, kind domain.PartyKind, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error)

	// DeleteParty removes a party record.
	DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string, userID string) error
}
