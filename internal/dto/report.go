package dto

import (
	"encoding/json"
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// ProfitLossParams bounds a profit & loss report to a period.
type ProfitLossParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// TaxReportParams selects the month a tax report covers.
type TaxReportParams struct {
	Year  int `form:"year" binding:"required,min=2000,max=2200"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// SaveReportRequest persists a snapshot of a generated report.
type SaveReportRequest struct {
	ReportType  domain.ReportType `json:"reportType" binding:"required,oneof=DASHBOARD BALANCE_SHEET PROFIT_LOSS TAX"`
	PeriodStart time.Time         `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time         `json:"periodEnd" binding:"required"`
	Payload     json.RawMessage   `json:"payload" binding:"required"`
}

// SavedReportResponse defines the data returned for a saved report snapshot.
type SavedReportResponse struct {
	ReportID    string            `json:"reportID"`
	ReportType  domain.ReportType `json:"reportType"`
	PeriodStart time.Time         `json:"periodStart"`
	PeriodEnd   time.Time         `json:"periodEnd"`
	Payload     json.RawMessage   `json:"payload"`
	GeneratedAt time.Time         `json:"generatedAt"`
	GeneratedBy string            `json:"generatedBy"`
}

// ToSavedReportResponse converts a domain.SavedReport to a DTO
func ToSavedReportResponse(r *domain.SavedReport) SavedReportResponse {
	return SavedReportResponse{
		ReportID:    r.ReportID,
		ReportType:  r.ReportType,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		Payload:     json.RawMessage(r.Payload),
		GeneratedAt: r.GeneratedAt,
		GeneratedBy: r.GeneratedBy,
	}
}

// ToListSavedReportResponse converts a slice of domain.SavedReport to DTOs
func ToListSavedReportResponse(reports []domain.SavedReport) []SavedReportResponse {
	res := make([]SavedReportResponse, len(reports))
	for i, r := range reports {
		res[i] = ToSavedReportResponse(&r)
	}
	return res
}
