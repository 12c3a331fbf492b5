package constants

// Booking lifecycle statuses
const (
	BookingStatusPending    = "PENDING"
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
)

// Booking channels
const (
	ChannelDirect     = "DIRECT"
	ChannelAirbnb     = "AIRBNB"
	ChannelBookingCom = "BOOKING_COM"
	ChannelOther      = "OTHER"
)

// CalendarSource identifies which external platform a feed belongs to
type CalendarSource string

const (
	SourceAirbnb     CalendarSource = "AIRBNB"
	SourceBookingCom CalendarSource = "BOOKING_COM"
)

// Channel maps a calendar source to the booking channel it books through
func (s CalendarSource) Channel() string {
	switch s {
	case SourceAirbnb:
		return ChannelAirbnb
	case SourceBookingCom:
		return ChannelBookingCom
	default:
		return ChannelOther
	}
}

// GuestPlaceholderEmail returns the placeholder contact written on bookings
// imported from a feed. Feeds never carry guest emails, and the column is
// required downstream, so it must not be empty.
func (s CalendarSource) GuestPlaceholderEmail() string {
	switch s {
	case SourceAirbnb:
		return "guest@airbnb.imported"
	case SourceBookingCom:
		return "guest@booking.imported"
	default:
		return "guest@calendar.imported"
	}
}

// bookingTransitions defines the allowed status moves
var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn: {BookingStatusCheckedOut},
}

// ValidBookingTransition reports whether a booking may move between statuses
func ValidBookingTransition(from, to string) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsBookingStatus reports whether the value is a known status
func IsBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}
