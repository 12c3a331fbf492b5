package gorm

import "time"

// GuestCheckIn holds identity data a guest submitted for a booking. A booking
// with at least one check-in is guest-data-bearing: reconciliation must never
// overwrite its guest fields.
type GuestCheckIn struct {
	ID             uint       `gorm:"column:id;primaryKey"`
	BookingID      uint       `gorm:"column:booking_id;index;not null"`
	FullName       string     `gorm:"column:full_name;not null"`
	Email          string     `gorm:"column:email"`
	Phone          string     `gorm:"column:phone"`
	DateOfBirth    *time.Time `gorm:"column:date_of_birth"`
	Nationality    string     `gorm:"column:nationality"`
	DocumentType   string     `gorm:"column:document_type;type:varchar(30)"`
	DocumentNumber string     `gorm:"column:document_number"`
	IsMainGuest    bool       `gorm:"column:is_main_guest;default:false"`
	SubmittedAt    time.Time  `gorm:"column:submitted_at;autoCreateTime"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID"`
}

// TableName specifies the table name for GORM
func (GuestCheckIn) TableName() string {
	return "guest_check_ins"
}
