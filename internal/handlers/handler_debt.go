package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// debtHandler handles HTTP requests for debts and receivables.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers debt/receivable routes.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebt)
		debts.PUT("/:id", h.updateDebt)
	}
}

// createDebt godoc
// @Summary Record a debt or receivable
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record debt")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt, time.Now()))
}

// getDebt godoc
// @Summary Get a debt or receivable by ID
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	debt, err := h.debtService.GetDebtByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now()))
}

// listDebts godoc
// @Summary List debts and receivables
// @Description Lists debts ordered by due date, optionally filtered by type, status or overdue state.
// @Tags debts
// @Produce json
// @Param type query string false "PAYABLE or RECEIVABLE"
// @Param status query string false "UNPAID, PARTIALLY_PAID or PAID"
// @Param overdueOnly query bool false "Only overdue items"
// @Success 200 {array} dto.DebtResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list debts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebtResponse(debts, time.Now()))
}

// updateDebt godoc
// @Summary Update a debt or receivable
// @Description Full-record replaces the debt, including its payment status.
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param debt body dto.UpdateDebtRequest true "New debt values"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt, time.Now()))
}
