package api

import (
	"encoding/json"
	"net/http"

	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
	models "stayflow/backoffice/internal/models/gorm"
)

// CreateMessageHandler handles POST /api/v1/messages
//
// Messages are queued rows only; nothing here talks to a delivery provider.
func CreateMessageHandler(messageRepo *repositories.MessageRepository, bookingRepo *repositories.BookingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.BookingID == 0 || req.Body == "" {
			respondWithError(w, http.StatusBadRequest, "Booking ID and body are required")
			return
		}

		if req.Channel != constants.MessageChannelEmail && req.Channel != constants.MessageChannelWhatsApp {
			respondWithError(w, http.StatusBadRequest, "Unknown message channel")
			return
		}

		booking, err := bookingRepo.FindByID(r.Context(), req.BookingID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load booking")
			return
		}
		if booking == nil {
			respondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}

		recipient := booking.GuestEmail
		if req.Channel == constants.MessageChannelWhatsApp {
			recipient = booking.GuestPhone
		}
		if recipient == "" {
			respondWithError(w, http.StatusConflict, "Booking has no contact for this channel")
			return
		}

		message := models.Message{
			BookingID: booking.ID,
			Channel:   req.Channel,
			Recipient: recipient,
			Subject:   req.Subject,
			Body:      req.Body,
			Status:    constants.MessageStatusQueued,
		}
		if err := messageRepo.Create(r.Context(), &message); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to queue message")
			return
		}

		respondWithSuccess(w, http.StatusCreated, &message)
	}
}

// ListMessagesHandler handles GET /api/v1/bookings/{bookingID}/messages
func ListMessagesHandler(messageRepo *repositories.MessageRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := parseUintParam(r, "bookingID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid booking ID")
			return
		}

		messages, err := messageRepo.ListByBooking(r.Context(), bookingID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list messages")
			return
		}

		respondWithSuccess(w, http.StatusOK, &messages)
	}
}
