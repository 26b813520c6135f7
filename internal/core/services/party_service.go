package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lancarbooks/lancar_backend/internal/apperrors"
	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portsrepo "github.com/lancarbooks/lancar_backend/internal/core/ports/repositories"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// partyService manages the customer and supplier registers through one code
// path; kind selects the backing table.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepository
}

// NewPartyService creates the customer/supplier service.
func NewPartyService(partyRepo portsrepo.PartyRepository) *partyService {
	return &partyService{partyRepo: partyRepo}
}

func (s *partyService) GetPartyByID(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, kind, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find party", slog.String("party_id", partyID), slog.String("kind", string(kind)))
		}
		return nil, err
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, kind, false, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		return []domain.Party{}, nil
	}
	return parties, nil
}

func (s *partyService) CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	now := time.Now()
	party := domain.Party{
		PartyID:  uuid.NewString(),
		Kind:     kind,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("kind", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(kind)))
	return &party, nil
}

func (s *partyService) UpdateParty(ctx context.Context, kind domain.PartyKind, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, kind, partyID)
	if err != nil {
		return nil, err
	}

	party.Name = req.Name
	party.Email = req.Email
	party.Phone = req.Phone
	party.Address = req.Address
	party.IsActive = req.IsActive
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, err
	}

	s.LogInfo(ctx, "Party updated", slog.String("party_id", partyID))
	return party, nil
}

func (s *partyService) DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string, userID string) error {
	if err := s.partyRepo.DeleteParty(ctx, kind, partyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		}
		return err
	}

	s.LogInfo(ctx, "Party deleted", slog.String("party_id", partyID), slog.String("kind", string(kind)))
	return nil
}
