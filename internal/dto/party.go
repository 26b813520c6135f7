package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// CreatePartyRequest defines the data needed to create a customer or supplier.
type CreatePartyRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdatePartyRequest is a full-record replace of a customer or supplier.
type UpdatePartyRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive bool   `json:"isActive"`
}

// PartyResponse defines the data returned for a customer or supplier.
type PartyResponse struct {
	PartyID       string           `json:"partyID"`
	Kind          domain.PartyKind `json:"kind"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToPartyResponse converts a domain.Party to a PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		Kind:          p.Kind,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Address:       p.Address,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPartyResponse converts a slice of domain.Party to DTOs
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(&p)
	}
	return res
}
