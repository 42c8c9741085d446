package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/roster-backend-go/internal/domain/worker"
	"github.com/shiftwise/roster-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, worker.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, worker.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, worker.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// CallerFromContext rebuilds the authenticated caller from the verified
// token claims. Returns ErrInvalidToken when the claims are incomplete.
func CallerFromContext(r *http.Request) (worker.Caller, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return worker.Caller{}, worker.ErrInvalidToken
	}

	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return worker.Caller{}, worker.ErrInvalidToken
	}
	orgID, ok := claims["org_id"].(string)
	if !ok || orgID == "" {
		return worker.Caller{}, worker.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)

	return worker.Caller{
		WorkerID: workerID,
		OrgID:    orgID,
		Email:    email,
		Role:     worker.Role(role),
	}, nil
}
