package middleware

import (
	"net/http"

	"stayflow/backoffice/internal/auth"
)

// RequireManagerial gates property, room and staff administration to owners
// and managers. Must run after AuthMiddleware.
func RequireManagerial() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetStaffClaims(r.Context())

			if claims == nil || !claims.IsManagerial() {
				http.Error(w, "Forbidden. Requires owner or manager role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
