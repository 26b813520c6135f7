package repositories

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// PartyRepository defines operations shared by the customer and supplier
// registers. The party's Kind selects the backing table.
type PartyRepository interface {
	// SaveParty persists a new customer or supplier.
	SaveParty(ctx context.Context, party domain.Party) error

	// FindPartyByID retrieves a party of the given kind.
	FindPartyByID(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error)

	// ListParties retrieves parties of the given kind ordered by name.
	ListParties(ctx context.Context, kind domain.PartyKind, activeOnly bool, limit, offset int) ([]domain.Party, error)

	// UpdateParty full-record replaces a customer or supplier.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party record of the given kind.
	DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error
}
