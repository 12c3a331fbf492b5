package repositories

import (
	"context"
	"time"

	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// RoomRepository handles room table operations
type RoomRepository struct {
	db *gormlib.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gormlib.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room

	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, propertyID uint) ([]models.Room, error) {
	var rooms []models.Room

	q := r.db.WithContext(ctx).Order("id ASC")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}

	err := q.Find(&rooms).Error
	return rooms, err
}

// ListWithFeeds returns rooms that have at least one external calendar URL
// configured, optionally narrowed to one property.
func (r *RoomRepository) ListWithFeeds(ctx context.Context, propertyID uint) ([]models.Room, error) {
	var rooms []models.Room

	q := r.db.WithContext(ctx).
		Where("airbnb_ical_url <> '' OR booking_com_ical_url <> ''")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}

	err := q.Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// TouchLastSyncedAt stamps the room after a sync attempt
func (r *RoomRepository) TouchLastSyncedAt(ctx context.Context, roomID uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("last_synced_at", at).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Room{}, id).Error
}
