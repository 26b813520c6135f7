package domain

import "time"

// BackupStatus tracks the outcome of a backup run.
type BackupStatus string

const (
	BackupCompleted BackupStatus = "COMPLETED"
	BackupFailed    BackupStatus = "FAILED"
)

// BackupRecord is one entry in the backup history: a snapshot of table row
// counts taken when a backup was triggered.
type BackupRecord struct {
	BackupID    string         `json:"backupID"` // Primary key (UUID)
	StartedAt   time.Time      `json:"startedAt"`
	FinishedAt  time.Time      `json:"finishedAt"`
	Status      BackupStatus   `json:"status"`
	RowCounts   map[string]int `json:"rowCounts"` // table name -> rows captured
	TriggeredBy string         `json:"triggeredBy"`
	Notes       string         `json:"notes"`
}
