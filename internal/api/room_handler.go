package api

import (
	"encoding/json"
	"net/http"

	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
	models "stayflow/backoffice/internal/models/gorm"
)

// CreateRoomHandler handles POST /api/v1/rooms
func CreateRoomHandler(roomRepo *repositories.RoomRepository, propertyRepo *repositories.PropertyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.PropertyID == 0 || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "Property ID and room name are required")
			return
		}

		property, err := propertyRepo.FindByID(r.Context(), req.PropertyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load property")
			return
		}
		if property == nil {
			respondWithError(w, http.StatusNotFound, "Property not found")
			return
		}

		room := models.Room{
			PropertyID:     req.PropertyID,
			Name:           req.Name,
			Number:         req.Number,
			MaxGuests:      req.MaxGuests,
			NightlyPrice:   req.NightlyPrice,
			AirbnbIcalURL:  req.AirbnbIcalURL,
			BookingIcalURL: req.BookingIcalURL,
		}
		if room.MaxGuests == 0 {
			room.MaxGuests = 2
		}

		if err := roomRepo.Create(r.Context(), &room); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create room")
			return
		}

		respondWithSuccess(w, http.StatusCreated, &room)
	}
}

// ListRoomsHandler handles GET /api/v1/rooms with an optional property_id filter
func ListRoomsHandler(roomRepo *repositories.RoomRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var propertyID uint
		if raw := r.URL.Query().Get("property_id"); raw != "" {
			id, err := parseUintQuery(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid property_id filter")
				return
			}
			propertyID = id
		}

		rooms, err := roomRepo.List(r.Context(), propertyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list rooms")
			return
		}

		respondWithSuccess(w, http.StatusOK, &rooms)
	}
}

// GetRoomHandler handles GET /api/v1/rooms/{roomID}
func GetRoomHandler(roomRepo *repositories.RoomRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "roomID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid room ID")
			return
		}

		room, err := roomRepo.FindByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load room")
			return
		}
		if room == nil {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}

		respondWithSuccess(w, http.StatusOK, room)
	}
}

// UpdateRoomFeedsHandler handles PUT /api/v1/rooms/{roomID}/feeds
func UpdateRoomFeedsHandler(roomRepo *repositories.RoomRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "roomID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid room ID")
			return
		}

		var req struct {
			AirbnbIcalURL  string `json:"airbnb_ical_url"`
			BookingIcalURL string `json:"booking_com_ical_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		room, err := roomRepo.FindByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load room")
			return
		}
		if room == nil {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}

		room.AirbnbIcalURL = req.AirbnbIcalURL
		room.BookingIcalURL = req.BookingIcalURL
		if err := roomRepo.Update(r.Context(), room); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update room")
			return
		}

		respondWithSuccess(w, http.StatusOK, room)
	}
}
