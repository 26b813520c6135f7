package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
	"github.com/lancarbooks/lancar_backend/internal/middleware"
)

// currencyHandler serves the currency catalogue and stored exchange rates.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.CurrencyRateSvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, rs portssvc.CurrencyRateSvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs, rateService: rs}
}

// registerCurrencyRoutes registers currency and rate routes. The refresh
// route is what the scheduled API-key callers hit.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, rateService portssvc.CurrencyRateSvcFacade) {
	h := newCurrencyHandler(currencyService, rateService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrency)
	}
	rates := rg.Group("/currency-rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/:from/:to", h.getRate)
		rates.POST("/refresh", h.refreshRates)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce json
// @Param code path string true "ISO 4217 code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listRates godoc
// @Summary List stored exchange rates
// @Tags currency-rates
// @Produce json
// @Success 200 {array} dto.CurrencyRateResponse
// @Security BearerAuth
// @Router /currency-rates [get]
func (h *currencyHandler) listRates(c *gin.Context) {
	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

// getRate godoc
// @Summary Get the stored rate for a currency pair
// @Tags currency-rates
// @Produce json
// @Param from path string true "From currency code"
// @Param to path string true "To currency code"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currency-rates/{from}/{to} [get]
func (h *currencyHandler) getRate(c *gin.Context) {
	rate, err := h.rateService.GetRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}

// refreshRates godoc
// @Summary Refresh exchange rates from the provider
// @Description Fetches fresh quotes, derives the pairs among the tracked currencies and upserts them. Transient provider failures are retried before the call fails.
// @Tags currency-rates
// @Produce json
// @Success 200 {object} dto.RefreshRatesResponse
// @Failure 502 {object} ErrorResponse "Provider unavailable"
// @Security BearerAuth
// @Router /currency-rates/refresh [post]
func (h *currencyHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.rateService.RefreshRates(c.Request.Context())
	if err != nil {
		logger.Error("Rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Rate provider unavailable"})
		return
	}

	logger.Info("Rates refreshed", slog.Int("updated", result.Updated), slog.Int("attempts", result.Attempts))
	c.JSON(http.StatusOK, result)
}
