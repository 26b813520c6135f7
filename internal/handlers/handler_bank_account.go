package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// bankAccountHandler handles HTTP requests for registered bank accounts.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

func newBankAccountHandler(bs portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{bankAccountService: bs}
}

// registerBankAccountRoutes registers bank account routes.
func registerBankAccountRoutes(rg *gin.RouterGroup, bankAccountService portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(bankAccountService)

	banks := rg.Group("/bank-accounts")
	{
		banks.POST("", h.createBankAccount)
		banks.GET("", h.listBankAccounts)
		banks.GET("/:id", h.getBankAccount)
		banks.PUT("/:id", h.updateBankAccount)
		banks.DELETE("/:id", h.deleteBankAccount)
	}
}

// createBankAccount godoc
// @Summary Register a bank account
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param bankAccount body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to register bank account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// getBankAccount godoc
// @Summary Get a bank account by ID
// @Tags bank-accounts
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{id} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	account, err := h.bankAccountService.GetBankAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags bank-accounts
// @Produce json
// @Success 200 {array} dto.BankAccountResponse
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list bank accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param id path string true "Bank account ID"
// @Param bankAccount body dto.UpdateBankAccountRequest true "New bank account values"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{id} [put]
func (h *bankAccountHandler) updateBankAccount(c *gin.Context) {
	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.bankAccountService.UpdateBankAccount(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// deleteBankAccount godoc
// @Summary Remove a bank account
// @Description Deactivates the bank account; the row is kept for history.
// @Tags bank-accounts
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{id} [delete]
func (h *bankAccountHandler) deleteBankAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.bankAccountService.DeleteBankAccount(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err, "Failed to remove bank account")
		return
	}
	c.Status(http.StatusNoContent)
}
