package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, worker.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || worker.Role(role) != worker.RoleAdmin {
			response.HandleError(w, worker.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
