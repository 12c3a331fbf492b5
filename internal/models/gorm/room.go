package gorm

import "time"

// Room is a rentable unit inside a property. A room owns at most one
// external calendar feed URL per platform.
type Room struct {
	ID             uint       `gorm:"column:id;primaryKey"`
	PropertyID     uint       `gorm:"column:property_id;index;not null"`
	Name           string     `gorm:"column:name;not null"`
	Number         string     `gorm:"column:number;type:varchar(50)"`
	MaxGuests      int        `gorm:"column:max_guests;default:2"`
	NightlyPrice   float64    `gorm:"column:nightly_price;default:0"`
	AirbnbIcalURL  string     `gorm:"column:airbnb_ical_url"`
	BookingIcalURL string     `gorm:"column:booking_com_ical_url"`
	LastSyncedAt   *time.Time `gorm:"column:last_synced_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Property Property  `gorm:"foreignKey:PropertyID"`
	Bookings []Booking `gorm:"foreignKey:RoomID"`
}

// TableName specifies the table name for GORM
func (Room) TableName() string {
	return "rooms"
}
