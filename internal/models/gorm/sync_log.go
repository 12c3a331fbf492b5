package gorm

import "time"

// SyncLog is an append-only audit record written once per sync attempt.
// Rows are never updated or deleted.
type SyncLog struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	RoomID         uint      `gorm:"column:room_id;index;not null"`
	Source         string    `gorm:"column:source;type:varchar(20);not null"`
	Success        bool      `gorm:"column:success;not null"`
	EventsImported int       `gorm:"column:events_imported;default:0"`
	Error          *string   `gorm:"column:error"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID"`
}

// TableName specifies the table name for GORM
func (SyncLog) TableName() string {
	return "sync_logs"
}
