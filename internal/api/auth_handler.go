package api

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"stayflow/backoffice/internal/auth"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
)

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(userRepo *repositories.UserRepository, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Email == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, err := userRepo.FindByEmail(r.Context(), req.Email)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to look up account")
			return
		}
		// Identical response for unknown account and wrong password
		if user == nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := auth.IssueToken(jwtSecret, user.ID, user.Email, user.Role)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		respondWithSuccess(w, http.StatusOK, &dtos.LoginResponse{
			Token: token,
			Role:  user.Role.String(),
		})
	}
}
