package models

import "time"

// SavedReport is the reports row shape. Payload holds the JSON snapshot.
type SavedReport struct {
	ReportID    string    `db:"report_id"`
	ReportType  string    `db:"report_type"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	Payload     []byte    `db:"payload"`
	GeneratedAt time.Time `db:"generated_at"`
	GeneratedBy string    `db:"generated_by"`
}
