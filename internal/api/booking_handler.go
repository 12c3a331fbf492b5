package api

import (
	"encoding/json"
	"math"
	"net/http"

	"stayflow/backoffice/internal/auth"
	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
	models "stayflow/backoffice/internal/models/gorm"
	"stayflow/backoffice/internal/services"
)

// CreateBookingHandler handles POST /api/v1/bookings for direct bookings
func CreateBookingHandler(bookingRepo *repositories.BookingRepository, roomRepo *repositories.RoomRepository, settings *services.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.RoomID == 0 || req.GuestName == "" || req.GuestEmail == "" {
			respondWithError(w, http.StatusBadRequest, "Room ID, guest name and guest email are required")
			return
		}
		if !req.CheckOut.After(req.CheckIn) {
			respondWithError(w, http.StatusBadRequest, "Check-out must be after check-in")
			return
		}

		room, err := roomRepo.FindByID(r.Context(), req.RoomID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load room")
			return
		}
		if room == nil {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}

		code, err := services.GenerateBookingCode(r.Context(), bookingRepo)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to generate booking code")
			return
		}

		totalPrice := req.TotalPrice
		if totalPrice == 0 && room.NightlyPrice > 0 {
			nights := int(math.Round(req.CheckOut.Sub(req.CheckIn).Hours() / 24))
			totalPrice = float64(nights) * room.NightlyPrice

			if setting, err := settings.Get(r.Context()); err == nil && setting.TaxRate > 0 {
				totalPrice = totalPrice * (1 + setting.TaxRate/100)
			}
		}

		channel := req.Channel
		if channel == "" {
			channel = constants.ChannelDirect
		}

		guestCount := req.GuestCount
		if guestCount == 0 {
			guestCount = 1
		}

		var createdBy uint
		if claims := auth.GetStaffClaims(r.Context()); claims != nil {
			createdBy = claims.UserID
		}

		booking := models.Booking{
			Code:       code,
			PropertyID: room.PropertyID,
			RoomID:     room.ID,
			GuestName:  req.GuestName,
			GuestEmail: req.GuestEmail,
			GuestPhone: req.GuestPhone,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			GuestCount: guestCount,
			TotalPrice: totalPrice,
			Status:     constants.BookingStatusPending,
			Channel:    channel,
			CreatedBy:  createdBy,
		}
		if err := bookingRepo.Create(r.Context(), &booking); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create booking")
			return
		}

		respondWithSuccess(w, http.StatusCreated, &booking)
	}
}

// ListBookingsHandler handles GET /api/v1/bookings with room_id and status filters
func ListBookingsHandler(bookingRepo *repositories.BookingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var roomID uint
		if raw := r.URL.Query().Get("room_id"); raw != "" {
			id, err := parseUintQuery(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid room_id filter")
				return
			}
			roomID = id
		}

		status := r.URL.Query().Get("status")
		if status != "" && !constants.IsBookingStatus(status) {
			respondWithError(w, http.StatusBadRequest, "Unknown booking status")
			return
		}

		bookings, err := bookingRepo.List(r.Context(), roomID, status)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list bookings")
			return
		}

		respondWithSuccess(w, http.StatusOK, &bookings)
	}
}

// GetBookingHandler handles GET /api/v1/bookings/{bookingID}
func GetBookingHandler(bookingRepo *repositories.BookingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "bookingID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid booking ID")
			return
		}

		booking, err := bookingRepo.FindByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load booking")
			return
		}
		if booking == nil {
			respondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}

		respondWithSuccess(w, http.StatusOK, booking)
	}
}

// UpdateBookingStatusHandler handles PATCH /api/v1/bookings/{bookingID}/status
func UpdateBookingStatusHandler(bookingRepo *repositories.BookingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "bookingID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid booking ID")
			return
		}

		var req dtos.UpdateBookingStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if !constants.IsBookingStatus(req.Status) {
			respondWithError(w, http.StatusBadRequest, "Unknown booking status")
			return
		}

		booking, err := bookingRepo.FindByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load booking")
			return
		}
		if booking == nil {
			respondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}

		if !constants.ValidBookingTransition(booking.Status, req.Status) {
			respondWithError(w, http.StatusConflict, "Invalid status transition from "+booking.Status+" to "+req.Status)
			return
		}

		if err := bookingRepo.UpdateFields(r.Context(), booking.ID, map[string]interface{}{
			"status": req.Status,
		}); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update booking status")
			return
		}

		booking.Status = req.Status
		respondWithSuccess(w, http.StatusOK, booking)
	}
}
