package repositories

import (
	"context"

	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// MessageRepository handles messages table operations
type MessageRepository struct {
	db *gormlib.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gormlib.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID uint) ([]models.Message, error) {
	var messages []models.Message

	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&messages).Error

	return messages, err
}
