package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary holds the headline totals shown on the dashboard.
// All fields default to zero when the underlying lists are empty.
type DashboardSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`  // Credits in the current calendar month
	MonthlyExpense   decimal.Decimal `json:"monthlyExpense"` // Debits in the current calendar month
	OutstandingDebt  decimal.Decimal `json:"outstandingDebt"`
	AsOf             time.Time       `json:"asOf"`
}

// AccountAmount pairs an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// BalanceSheetReport groups active account balances by fundamental type.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// ProfitLossReport nets revenue against expenses for a period.
type ProfitLossReport struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Revenue      []AccountAmount `json:"revenue"`
	Expenses     []AccountAmount `json:"expenses"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// TaxReport applies the company tax rate to period revenue.
type TaxReport struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TaxableRevenue decimal.Decimal `json:"taxableRevenue"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	TaxDue         decimal.Decimal `json:"taxDue"`
}

// ReportType identifies a saved report snapshot.
type ReportType string

const (
	ReportDashboard    ReportType = "DASHBOARD"
	ReportBalanceSheet ReportType = "BALANCE_SHEET"
	ReportProfitLoss   ReportType = "PROFIT_LOSS"
	ReportTax          ReportType = "TAX"
)

// SavedReport is a persisted snapshot of a generated report.
type SavedReport struct {
	ReportID    string     `json:"reportID"` // Primary key (UUID)
	ReportType  ReportType `json:"reportType"`
	PeriodStart time.Time  `json:"periodStart"`
	PeriodEnd   time.Time  `json:"periodEnd"`
	Payload     []byte     `json:"payload"` // JSON snapshot of the report body
	GeneratedAt time.Time  `json:"generatedAt"`
	GeneratedBy string     `json:"generatedBy"`
}
