package repositories

import (
	"context"

	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// CheckInRepository handles guest_check_ins table operations
type CheckInRepository struct {
	db *gormlib.DB
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(db *gormlib.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) Create(ctx context.Context, checkIn *models.GuestCheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *CheckInRepository) ListByBooking(ctx context.Context, bookingID uint) ([]models.GuestCheckIn, error) {
	var checkIns []models.GuestCheckIn

	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("submitted_at ASC").
		Find(&checkIns).Error

	return checkIns, err
}
