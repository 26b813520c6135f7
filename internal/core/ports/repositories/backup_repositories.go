package repositories

import (
	"context"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// BackupRepository defines operations for the backup history
type BackupRepository interface {
	// SaveBackupRecord persists a backup history entry.
	SaveBackupRecord(ctx context.Context, record domain.BackupRecord) error

	// ListBackupRecords retrieves history entries, newest first.
	ListBackupRecords(ctx context.Context, limit, offset int) ([]domain.BackupRecord, error)

	// CountRows returns the row count of a whitelisted entity table.
	CountRows(ctx context.Context, table string) (int, error)
}
