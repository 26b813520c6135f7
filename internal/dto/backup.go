package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// TriggerBackupRequest starts a backup run; notes are optional.
type TriggerBackupRequest struct {
	Notes string `json:"notes"`
}

// BackupRecordResponse defines the data returned for one backup run.
type BackupRecordResponse struct {
	BackupID    string              `json:"backupID"`
	StartedAt   time.Time           `json:"startedAt"`
	FinishedAt  time.Time           `json:"finishedAt"`
	Status      domain.BackupStatus `json:"status"`
	RowCounts   map[string]int      `json:"rowCounts"`
	TriggeredBy string              `json:"triggeredBy"`
	Notes       string              `json:"notes"`
}

// ToBackupRecordResponse converts a domain.BackupRecord to a DTO
func ToBackupRecordResponse(b *domain.BackupRecord) BackupRecordResponse {
	return BackupRecordResponse{
		BackupID:    b.BackupID,
		StartedAt:   b.StartedAt,
		FinishedAt:  b.FinishedAt,
		Status:      b.Status,
		RowCounts:   b.RowCounts,
		TriggeredBy: b.TriggeredBy,
		Notes:       b.Notes,
	}
}

// ToListBackupRecordResponse converts a slice of domain.BackupRecord to DTOs
func ToListBackupRecordResponse(records []domain.BackupRecord) []BackupRecordResponse {
	res := make([]BackupRecordResponse, len(records))
	for i, b := range records {
		res[i] = ToBackupRecordResponse(&b)
	}
	return res
}
