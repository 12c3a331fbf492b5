package api

import (
	"net/http"

	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/ical"
)

// ExportRoomCalendarHandler handles GET /api/v1/rooms/{roomID}/calendar.ics
//
// Platforms poll this feed; responses must never be cached so a removed
// booking frees the dates immediately.
func ExportRoomCalendarHandler(roomRepo *repositories.RoomRepository, bookingRepo *repositories.BookingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := parseUintParam(r, "roomID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid room ID")
			return
		}

		room, err := roomRepo.FindByID(r.Context(), roomID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load room")
			return
		}
		if room == nil {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}

		bookings, err := bookingRepo.ListActiveForRoom(r.Context(), roomID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load bookings")
			return
		}

		body, err := ical.BuildRoomCalendar(room, bookings)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to build calendar")
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		_, _ = w.Write(body)
	}
}
