package ical

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	goical "github.com/emersion/go-ical"

	models "stayflow/backoffice/internal/models/gorm"
)

const prodID = "-//Stayflow//Back Office Calendar//EN"

// BuildRoomCalendar renders a room's non-cancelled bookings as an iCal
// document of opaque busy blocks. The UID is the booking's external
// calendar ID when it was imported, else a stable local identifier.
func BuildRoomCalendar(room *models.Room, bookings []models.Booking) ([]byte, error) {
	if len(bookings) == 0 {
		// go-ical's encoder rejects a VCALENDAR with no components, so
		// emit the empty document directly.
		empty := strings.Join([]string{
			"BEGIN:VCALENDAR",
			"VERSION:2.0",
			"PRODID:" + prodID,
			"END:VCALENDAR",
			"",
		}, "\r\n")
		return []byte(empty), nil
	}

	cal := goical.NewCalendar()
	cal.Props.SetText(goical.PropVersion, "2.0")
	cal.Props.SetText(goical.PropProductID, prodID)

	now := time.Now().UTC()

	for i := range bookings {
		b := &bookings[i]

		event := goical.NewComponent(goical.CompEvent)

		uid := fmt.Sprintf("booking-%d@stayflow", b.ID)
		if b.ExternalCalendarID != nil && *b.ExternalCalendarID != "" {
			uid = *b.ExternalCalendarID
		}
		event.Props.SetText(goical.PropUID, uid)
		event.Props.SetText(goical.PropSummary, "Occupied – "+b.GuestName)
		event.Props.SetText("TRANSP", "OPAQUE")
		event.Props.SetDateTime(goical.PropDateTimeStamp, now)
		event.Props.SetDateTime(goical.PropDateTimeStart, b.CheckIn.UTC())
		event.Props.SetDateTime(goical.PropDateTimeEnd, b.CheckOut.UTC())

		cal.Children = append(cal.Children, event)
	}

	var buf bytes.Buffer
	if err := goical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar for room %d: %w", room.ID, err)
	}

	return buf.Bytes(), nil
}
