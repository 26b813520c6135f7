package mapping

import (
	"encoding/json"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/models"
)

// ToModelBackupRecord converts a domain BackupRecord to the row shape.
func ToModelBackupRecord(d domain.BackupRecord) (models.BackupRecord, error) {
	counts, err := json.Marshal(d.RowCounts)
	if err != nil {
		return models.BackupRecord{}, err
	}
	return models.BackupRecord{
		BackupID:    d.BackupID,
		StartedAt:   d.StartedAt,
		FinishedAt:  d.FinishedAt,
		Status:      string(d.Status),
		RowCounts:   counts,
		TriggeredBy: d.TriggeredBy,
		Notes:       d.Notes,
	}, nil
}

// ToDomainBackupRecord converts a backup_history row to the domain shape.
func ToDomainBackupRecord(m models.BackupRecord) (domain.BackupRecord, error) {
	counts := map[string]int{}
	if len(m.RowCounts) > 0 {
		if err := json.Unmarshal(m.RowCounts, &counts); err != nil {
			return domain.BackupRecord{}, err
		}
	}
	return domain.BackupRecord{
		BackupID:    m.BackupID,
		StartedAt:   m.StartedAt,
		FinishedAt:  m.FinishedAt,
		Status:      domain.BackupStatus(m.Status),
		RowCounts:   counts,
		TriggeredBy: m.TriggeredBy,
		Notes:       m.Notes,
	}, nil
}

// ToModelSavedReport converts a domain SavedReport to the row shape.
func ToModelSavedReport(d domain.SavedReport) models.SavedReport {
	return models.SavedReport{
		ReportID:    d.ReportID,
		ReportType:  string(d.ReportType),
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		Payload:     d.Payload,
		GeneratedAt: d.GeneratedAt,
		GeneratedBy: d.GeneratedBy,
	}
}

// ToDomainSavedReport converts a reports row to the domain shape.
func ToDomainSavedReport(m models.SavedReport) domain.SavedReport {
	return domain.SavedReport{
		ReportID:    m.ReportID,
		ReportType:  domain.ReportType(m.ReportType),
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		Payload:     m.Payload,
		GeneratedAt: m.GeneratedAt,
		GeneratedBy: m.GeneratedBy,
	}
}
