package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// settingsHandler serves the company profile and per-user preferences.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/company", h.getCompanySettings)
		settings.PUT("/company", h.updateCompanySettings)
		settings.GET("/app", h.getAppSettings)
		settings.PUT("/app", h.saveAppSettings)
	}
}

// getCompanySettings godoc
// @Summary Get the company profile
// @Tags settings
// @Produce json
// @Success 200 {object} dto.CompanySettingsResponse
// @Failure 404 {object} ErrorResponse "Never configured"
// @Security BearerAuth
// @Router /settings/company [get]
func (h *settingsHandler) getCompanySettings(c *gin.Context) {
	settings, err := h.settingsService.GetCompanySettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve company settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanySettingsResponse(settings))
}

// updateCompanySettings godoc
// @Summary Update the company profile
// @Description Replaces the company profile. Admin only; currency codes must exist in the catalogue.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateCompanySettingsRequest true "Company profile"
// @Success 200 {object} dto.CompanySettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/company [put]
func (h *settingsHandler) updateCompanySettings(c *gin.Context) {
	var req dto.UpdateCompanySettingsRequest
	if err := strictBindJSON(c, &req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.UpdateCompanySettings(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update company settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanySettingsResponse(settings))
}

// getAppSettings godoc
// @Summary Get own presentation preferences
// @Description Returns the caller's saved preferences, or the defaults when none are saved.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.AppSettingsResponse
// @Security BearerAuth
// @Router /settings/app [get]
func (h *settingsHandler) getAppSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetAppSettings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve app settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToAppSettingsResponse(settings))
}

// saveAppSettings godoc
// @Summary Save own presentation preferences
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.SaveAppSettingsRequest true "Preferences"
// @Success 200 {object} dto.AppSettingsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/app [put]
func (h *settingsHandler) saveAppSettings(c *gin.Context) {
	var req dto.SaveAppSettingsRequest
	if err := strictBindJSON(c, &req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.SaveAppSettings(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to save app settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToAppSettingsResponse(settings))
}
