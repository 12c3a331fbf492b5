package repositories

import (
	"context"

	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// SyncLogRepository handles sync_logs table operations. The table is
// append-only: rows are recorded once and never mutated.
type SyncLogRepository struct {
	db *gormlib.DB
}

// NewSyncLogRepository creates a new sync log repository
func NewSyncLogRepository(db *gormlib.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

// Record writes one audit row for a sync attempt
func (r *SyncLogRepository) Record(ctx context.Context, roomID uint, source string, success bool, imported int, errMsg string) error {
	entry := models.SyncLog{
		RoomID:         roomID,
		Source:         source,
		Success:        success,
		EventsImported: imported,
	}
	if errMsg != "" {
		entry.Error = &errMsg
	}

	return r.db.WithContext(ctx).Create(&entry).Error
}

// ListByRoom returns the most recent sync attempts for a room
func (r *SyncLogRepository) ListByRoom(ctx context.Context, roomID uint, limit int) ([]models.SyncLog, error) {
	var logs []models.SyncLog

	if limit <= 0 {
		limit = 50
	}

	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error

	return logs, err
}
