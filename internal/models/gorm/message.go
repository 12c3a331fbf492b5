package gorm

import "time"

// Message is an outbound guest message queued for an external delivery
// provider. The back office records rows; delivery happens elsewhere.
type Message struct {
	ID        uint       `gorm:"column:id;primaryKey"`
	BookingID uint       `gorm:"column:booking_id;index;not null"`
	Channel   string     `gorm:"column:channel;type:varchar(20);not null"`
	Recipient string     `gorm:"column:recipient;not null"`
	Subject   string     `gorm:"column:subject"`
	Body      string     `gorm:"column:body;type:text"`
	Status    string     `gorm:"column:status;type:varchar(20);default:QUEUED"`
	SentAt    *time.Time `gorm:"column:sent_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
