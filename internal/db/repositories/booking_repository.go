package repositories

import (
	"context"
	"time"

	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// BookingRepository handles booking table operations
type BookingRepository struct {
	db *gormlib.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gormlib.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindByID loads a booking by primary key
func (r *BookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking

	err := r.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// FindByCode loads a booking by its unique code
func (r *BookingRepository) FindByCode(ctx context.Context, code string) (*models.Booking, error) {
	var booking models.Booking

	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&booking).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// FindByExternalID looks up the booking holding a feed event UID for a room.
// (room, external_calendar_id) is the reconciliation idempotency key.
func (r *BookingRepository) FindByExternalID(ctx context.Context, roomID uint, externalID string) (*models.Booking, error) {
	var booking models.Booking

	err := r.db.WithContext(ctx).
		Where("room_id = ? AND external_calendar_id = ?", roomID, externalID).
		First(&booking).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// CodeExists reports whether a booking code is already taken
func (r *BookingRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// UpdateFields applies a partial update and refreshes updated_at
func (r *BookingRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// CountCheckIns returns how many guest check-ins reference a booking
func (r *BookingRepository) CountCheckIns(ctx context.Context, bookingID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.GuestCheckIn{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error

	return count, err
}

// ListImportedMissingFromFeed returns imported bookings for a room+channel
// whose external UID is absent from the current feed and whose check-in is
// on or after the given date. These are removal candidates.
func (r *BookingRepository) ListImportedMissingFromFeed(ctx context.Context, roomID uint, channel string, feedUIDs []string, from time.Time) ([]models.Booking, error) {
	var bookings []models.Booking

	q := r.db.WithContext(ctx).
		Where("room_id = ? AND channel = ? AND imported_from_ical = ? AND external_calendar_id IS NOT NULL", roomID, channel, true).
		Where("check_in >= ?", from)

	if len(feedUIDs) > 0 {
		q = q.Where("external_calendar_id NOT IN ?", feedUIDs)
	}

	err := q.Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Delete removes a booking row
func (r *BookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// List returns bookings, optionally filtered by room and status
func (r *BookingRepository) List(ctx context.Context, roomID uint, status string) ([]models.Booking, error) {
	var bookings []models.Booking

	q := r.db.WithContext(ctx).Order("check_in DESC")
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	err := q.Find(&bookings).Error
	return bookings, err
}

// ListActiveForRoom returns non-cancelled bookings for a room, for calendar export
func (r *BookingRepository) ListActiveForRoom(ctx context.Context, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Where("room_id = ? AND status <> ?", roomID, "CANCELLED").
		Order("check_in ASC").
		Find(&bookings).Error

	return bookings, err
}
