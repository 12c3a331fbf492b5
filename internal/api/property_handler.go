package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
	models "stayflow/backoffice/internal/models/gorm"
)

// CreatePropertyHandler handles POST /api/v1/properties
func CreatePropertyHandler(propertyRepo *repositories.PropertyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "Property name is required")
			return
		}

		property := models.Property{
			Name:     req.Name,
			Address:  req.Address,
			City:     req.City,
			Timezone: req.Timezone,
		}
		if err := propertyRepo.Create(r.Context(), &property); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create property")
			return
		}

		respondWithSuccess(w, http.StatusCreated, &property)
	}
}

// ListPropertiesHandler handles GET /api/v1/properties
func ListPropertiesHandler(propertyRepo *repositories.PropertyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := propertyRepo.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list properties")
			return
		}

		respondWithSuccess(w, http.StatusOK, &properties)
	}
}

// GetPropertyHandler handles GET /api/v1/properties/{propertyID}
func GetPropertyHandler(propertyRepo *repositories.PropertyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "propertyID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		property, err := propertyRepo.FindByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load property")
			return
		}
		if property == nil {
			respondWithError(w, http.StatusNotFound, "Property not found")
			return
		}

		respondWithSuccess(w, http.StatusOK, property)
	}
}

// DeletePropertyHandler handles DELETE /api/v1/properties/{propertyID}
func DeletePropertyHandler(propertyRepo *repositories.PropertyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "propertyID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		if err := propertyRepo.Delete(r.Context(), id); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to delete property")
			return
		}

		msg := "Property deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

func parseUintParam(r *http.Request, name string) (uint, error) {
	return parseUintQuery(chi.URLParam(r, name))
}

func parseUintQuery(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
