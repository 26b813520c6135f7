package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// ledgerHandler serves the per-account running-balance view.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger route under accounts.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	rg.GET("/accounts/:id/ledger", h.getLedger)
}

// getLedger godoc
// @Summary Get the account ledger
// @Description Returns the account's transactions in chronological order with a running balance per entry and the closing balance.
// @Tags ledger
// @Produce json
// @Param id path string true "Account ID"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param description query string false "Substring filter on description"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{id}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.ledgerService.GetLedger(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondServiceError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(view))
}
