package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lancarbooks/lancar_backend/internal/middleware"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// apiKeyHandler manages machine credentials for scheduled callers.
type apiKeyHandler struct {
	apiKeyService portssvc.APIKeySvcFacade
}

func newAPIKeyHandler(ks portssvc.APIKeySvcFacade) *apiKeyHandler {
	return &apiKeyHandler{apiKeyService: ks}
}

// registerAPIKeyRoutes registers API key routes.
func registerAPIKeyRoutes(rg *gin.RouterGroup, apiKeyService portssvc.APIKeySvcFacade) {
	h := newAPIKeyHandler(apiKeyService)

	keys := rg.Group("/api-keys")
	{
		keys.POST("", h.createAPIKey)
		keys.GET("", h.listAPIKeys)
		keys.DELETE("/:id", h.revokeAPIKey)
	}
}

// createAPIKey godoc
// @Summary Create an API key
// @Description Mints a new key. The plaintext secret appears only in this response.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param key body dto.CreateAPIKeyRequest true "Key details"
// @Success 201 {object} dto.CreateAPIKeyResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api-keys [post]
func (h *apiKeyHandler) createAPIKey(c *gin.Context) {
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.apiKeyService.CreateAPIKey(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create API key")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("api key created", "keyID", resp.KeyID)
	c.JSON(http.StatusCreated, resp)
}

// listAPIKeys godoc
// @Summary List own API keys
// @Tags api-keys
// @Produce json
// @Success 200 {array} dto.APIKeyResponse
// @Security BearerAuth
// @Router /api-keys [get]
func (h *apiKeyHandler) listAPIKeys(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	keys, err := h.apiKeyService.ListAPIKeys(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list API keys")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAPIKeyResponse(keys))
}

// revokeAPIKey godoc
// @Summary Revoke an API key
// @Description Permanently disables the key. Revocation cannot be undone.
// @Tags api-keys
// @Param id path string true "Key ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api-keys/{id} [delete]
func (h *apiKeyHandler) revokeAPIKey(c *gin.Context) {
	keyID := c.Param("id")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.apiKeyService.RevokeAPIKey(c.Request.Context(), keyID, userID); err != nil {
		respondServiceError(c, err, "Failed to revoke API key")
		return
	}
	c.Status(http.StatusNoContent)
}
