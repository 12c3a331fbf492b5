package middleware

import (
	"net/http"
	"strings"

	"stayflow/backoffice/internal/auth"
)

// AuthMiddleware validates the Bearer session token and stores the staff
// claims on the request context.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := auth.ParseToken(jwtSecret, tokenString)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetStaffClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
