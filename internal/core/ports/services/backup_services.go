package services

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// BackupSvcFacade records backup runs in the backup history.
type BackupSvcFacade interface {
	// TriggerBackup captures current table row counts and records the run.
	TriggerBackup(ctx context.Context, req dto.TriggerBackupRequest, userID string) (*domain.BackupRecord, error)

	// ListBackups retrieves the backup history, newest first.
	ListBackups(ctx context.Context, limit int) ([]domain.BackupRecord, error)
}
