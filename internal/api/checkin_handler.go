package api

import (
	"encoding/json"
	"net/http"

	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
	models "stayflow/backoffice/internal/models/gorm"
)

// SubmitCheckInHandler handles POST /api/v1/checkin
//
// Public endpoint: guests identify themselves with the booking code, no
// session required. Cancelled bookings do not accept check-ins.
func SubmitCheckInHandler(bookingRepo *repositories.BookingRepository, checkInRepo *repositories.CheckInRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SubmitCheckInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.BookingCode == "" || req.FullName == "" {
			respondWithError(w, http.StatusBadRequest, "Booking code and full name are required")
			return
		}

		booking, err := bookingRepo.FindByCode(r.Context(), req.BookingCode)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to look up booking")
			return
		}
		if booking == nil {
			respondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}
		if booking.Status == constants.BookingStatusCancelled {
			respondWithError(w, http.StatusConflict, "Booking is cancelled")
			return
		}

		existing, err := checkInRepo.ListByBooking(r.Context(), booking.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load check-ins")
			return
		}
		if len(existing) >= booking.GuestCount {
			respondWithError(w, http.StatusConflict, "All guests have already checked in")
			return
		}

		checkIn := models.GuestCheckIn{
			BookingID:      booking.ID,
			FullName:       req.FullName,
			Email:          req.Email,
			Phone:          req.Phone,
			DateOfBirth:    req.DateOfBirth,
			Nationality:    req.Nationality,
			DocumentType:   req.DocumentType,
			DocumentNumber: req.DocumentNumber,
			IsMainGuest:    req.IsMainGuest || len(existing) == 0,
		}
		if err := checkInRepo.Create(r.Context(), &checkIn); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save check-in")
			return
		}

		// The main guest's submission becomes the booking's contact data
		if checkIn.IsMainGuest {
			fields := map[string]interface{}{"guest_name": checkIn.FullName}
			if checkIn.Email != "" {
				fields["guest_email"] = checkIn.Email
			}
			if checkIn.Phone != "" {
				fields["guest_phone"] = checkIn.Phone
			}
			if err := bookingRepo.UpdateFields(r.Context(), booking.ID, fields); err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to update booking contact")
				return
			}
		}

		respondWithSuccess(w, http.StatusCreated, &checkIn)
	}
}

// ListCheckInsHandler handles GET /api/v1/bookings/{bookingID}/checkins
func ListCheckInsHandler(checkInRepo *repositories.CheckInRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := parseUintParam(r, "bookingID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid booking ID")
			return
		}

		checkIns, err := checkInRepo.ListByBooking(r.Context(), bookingID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list check-ins")
			return
		}

		respondWithSuccess(w, http.StatusOK, &checkIns)
	}
}
