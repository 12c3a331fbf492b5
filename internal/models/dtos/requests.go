package dtos

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePropertyRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Timezone string `json:"timezone,omitempty"`
}

type CreateRoomRequest struct {
	PropertyID     uint    `json:"property_id"`
	Name           string  `json:"name"`
	Number         string  `json:"number,omitempty"`
	MaxGuests      int     `json:"max_guests,omitempty"`
	NightlyPrice   float64 `json:"nightly_price,omitempty"`
	AirbnbIcalURL  string  `json:"airbnb_ical_url,omitempty"`
	BookingIcalURL string  `json:"booking_com_ical_url,omitempty"`
}

type CreateBookingRequest struct {
	RoomID     uint      `json:"room_id"`
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email"`
	GuestPhone string    `json:"guest_phone,omitempty"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count,omitempty"`
	TotalPrice float64   `json:"total_price,omitempty"`
	Channel    string    `json:"channel,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type SubmitCheckInRequest struct {
	BookingCode    string     `json:"booking_code"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Nationality    string     `json:"nationality,omitempty"`
	DocumentType   string     `json:"document_type,omitempty"`
	DocumentNumber string     `json:"document_number,omitempty"`
	IsMainGuest    bool       `json:"is_main_guest,omitempty"`
}

type CreateStaffAssignmentRequest struct {
	UserID     uint   `json:"user_id"`
	PropertyID uint   `json:"property_id"`
	Role       string `json:"role"`
}

type CreateMessageRequest struct {
	BookingID uint   `json:"booking_id"`
	Channel   string `json:"channel"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body"`
}

// TriggerCalendarSyncRequest optionally narrows the batch sync to one property
type TriggerCalendarSyncRequest struct {
	PropertyID uint `json:"property_id,omitempty"`
}
