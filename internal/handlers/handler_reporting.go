package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// reportingHandler serves the dashboard, financial reports and saved
// snapshots.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers dashboard and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/profit-loss", h.getProfitLoss)
		reports.GET("/tax", h.getTaxReport)
		reports.POST("/saved", h.saveReport)
		reports.GET("/saved", h.listSavedReports)
		reports.GET("/saved/:id", h.getSavedReport)
	}
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Returns headline totals: cash position, liabilities, equity, current-month income and expense, and outstanding debt.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Groups active account balances by fundamental type.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.BalanceSheetReport
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	report, err := h.reportingService.GetBalanceSheet(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getProfitLoss godoc
// @Summary Profit & loss report
// @Description Nets revenue against expenses for the requested period.
// @Tags reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} domain.ProfitLossReport
// @Failure 400 {object} ErrorResponse "Inverted period"
// @Security BearerAuth
// @Router /reports/profit-loss [get]
func (h *reportingHandler) getProfitLoss(c *gin.Context) {
	var params dto.ProfitLossParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	report, err := h.reportingService.GetProfitLoss(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondServiceError(c, err, "Failed to build profit & loss report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getTaxReport godoc
// @Summary Monthly tax report
// @Description Applies the company tax rate to the month's revenue.
// @Tags reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} domain.TaxReport
// @Security BearerAuth
// @Router /reports/tax [get]
func (h *reportingHandler) getTaxReport(c *gin.Context) {
	var params dto.TaxReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	report, err := h.reportingService.GetTaxReport(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		respondServiceError(c, err, "Failed to build tax report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// saveReport godoc
// @Summary Save a report snapshot
// @Tags reports
// @Accept json
// @Produce json
// @Param report body dto.SaveReportRequest true "Report snapshot"
// @Success 201 {object} dto.SavedReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/saved [post]
func (h *reportingHandler) saveReport(c *gin.Context) {
	var req dto.SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reportingService.SaveReport(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to save report")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSavedReportResponse(report))
}

// listSavedReports godoc
// @Summary List saved report snapshots
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} dto.SavedReportResponse
// @Security BearerAuth
// @Router /reports/saved [get]
func (h *reportingHandler) listSavedReports(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
		return
	}

	reports, err := h.reportingService.ListSavedReports(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list saved reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSavedReportResponse(reports))
}

// getSavedReport godoc
// @Summary Get a saved report snapshot
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.SavedReportResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/saved/{id} [get]
func (h *reportingHandler) getSavedReport(c *gin.Context) {
	report, err := h.reportingService.GetSavedReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve saved report")
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedReportResponse(report))
}
