package gorm

import "time"

// Booking is a stay. Bookings imported from an external calendar feed carry
// the feed event UID in ExternalCalendarID; (room, source, UID) is the
// idempotency key for reconciliation.
type Booking struct {
	ID                 uint      `gorm:"column:id;primaryKey"`
	Code               string    `gorm:"column:code;type:varchar(20);uniqueIndex;not null"`
	PropertyID         uint      `gorm:"column:property_id;index;not null"`
	RoomID             uint      `gorm:"column:room_id;index;not null"`
	GuestName          string    `gorm:"column:guest_name;not null"`
	GuestEmail         string    `gorm:"column:guest_email;not null"`
	GuestPhone         string    `gorm:"column:guest_phone"`
	CheckIn            time.Time `gorm:"column:check_in;not null"`
	CheckOut           time.Time `gorm:"column:check_out;not null"`
	GuestCount         int       `gorm:"column:guest_count;default:1"`
	TotalPrice         float64   `gorm:"column:total_price;default:0"`
	Status             string    `gorm:"column:status;type:varchar(20);not null;index"`
	Channel            string    `gorm:"column:channel;type:varchar(20);not null"`
	ImportedFromIcal   bool      `gorm:"column:imported_from_ical;default:false"`
	ExternalCalendarID *string   `gorm:"column:external_calendar_id;index"`
	CreatedBy          uint      `gorm:"column:created_by"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Room     Room           `gorm:"foreignKey:RoomID"`
	Property Property       `gorm:"foreignKey:PropertyID"`
	CheckIns []GuestCheckIn `gorm:"foreignKey:BookingID"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
