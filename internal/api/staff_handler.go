package api

import (
	"encoding/json"
	"net/http"

	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
	models "stayflow/backoffice/internal/models/gorm"
)

// CreateStaffAssignmentHandler handles POST /api/v1/staff-assignments
func CreateStaffAssignmentHandler(assignmentRepo *repositories.StaffAssignmentRepository, userRepo *repositories.UserRepository, propertyRepo *repositories.PropertyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateStaffAssignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		role := constants.StaffRole(req.Role)
		switch role {
		case constants.RoleOwner, constants.RoleManager, constants.RoleReceptionist, constants.RoleCleaner:
		default:
			respondWithError(w, http.StatusBadRequest, "Unknown staff role")
			return
		}

		user, err := userRepo.FindByID(r.Context(), req.UserID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load user")
			return
		}
		if user == nil {
			respondWithError(w, http.StatusNotFound, "User not found")
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

		assignment := models.StaffAssignment{
			UserID:     req.UserID,
			PropertyID: req.PropertyID,
			Role:       role,
			IsActive:   true,
		}
		if err := assignmentRepo.Create(r.Context(), &assignment); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create assignment")
			return
		}

		respondWithSuccess(w, http.StatusCreated, &assignment)
	}
}

// ListStaffAssignmentsHandler handles GET /api/v1/properties/{propertyID}/staff
func ListStaffAssignmentsHandler(assignmentRepo *repositories.StaffAssignmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID, err := parseUintParam(r, "propertyID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		assignments, err := assignmentRepo.ListByProperty(r.Context(), propertyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list assignments")
			return
		}

		respondWithSuccess(w, http.StatusOK, &assignments)
	}
}
