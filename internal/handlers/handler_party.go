package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// partyHandler serves both the customer and supplier registers; the kind is
// fixed per route group.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
	kind         domain.PartyKind
}

func newPartyHandler(ps portssvc.PartySvcFacade, kind domain.PartyKind) *partyHandler {
	return &partyHandler{partyService: ps, kind: kind}
}

// registerPartyRoutes registers the /customers and /suppliers route groups.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	for path, kind := range map[string]domain.PartyKind{
		"/customers": domain.Customer,
		"/suppliers": domain.Supplier,
	} {
		h := newPartyHandler(partyService, kind)
		parties := rg.Group(path)
		{
			parties.POST("", h.createParty)
			parties.GET("", h.listParties)
			parties.GET("/:id", h.getParty)
			parties.PUT("/:id", h.updateParty)
			parties.DELETE("/:id", h.deleteParty)
		}
	}
}

// createParty godoc
// @Summary Create a customer or supplier
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Contact details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *partyHandler) createParty(c *gin.Context) {
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create contact")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getParty godoc
// @Summary Get a customer or supplier by ID
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	party, err := h.partyService.GetPartyByID(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List customers or suppliers
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *partyHandler) listParties(c *gin.Context) {
	parties, err := h.partyService.ListParties(c.Request.Context(), h.kind)
	if err != nil {
		respondServiceError(c, err, "Failed to list contacts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPartyResponse(parties))
}

// updateParty godoc
// @Summary Update a customer or supplier
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "New contact values"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), h.kind, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deleteParty godoc
// @Summary Delete a customer or supplier
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.partyService.DeleteParty(c.Request.Context(), h.kind, c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete contact")
		return
	}
	c.Status(http.StatusNoContent)
}
