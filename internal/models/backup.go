package models

import "time"

// BackupRecord is the backup_history row shape. RowCounts is stored as JSON.
type BackupRecord struct {
	BackupID    string    `db:"backup_id"`
	StartedAt   time.Time `db:"started_at"`
	FinishedAt  time.Time `db:"finished_at"`
	Status      string    `db:"status"`
	RowCounts   []byte    `db:"row_counts"`
	TriggeredBy string    `db:"triggered_by"`
	Notes       string    `db:"notes"`
}
