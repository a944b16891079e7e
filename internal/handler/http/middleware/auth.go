package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
	"github.com/hrpayroll/attendance-backend-go/internal/handler/http/response"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthRequired rejects requests without a verified access token and
// resolves the claims to the acting employee. No role rules live here:
// every authenticated role passes, the workflow guard decides per
// operation.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid token type")
				return
			}

			employeeID, ok := claims["employee_id"].(string)
			if !ok || employeeID == "" {
				response.Unauthorized(w, "Invalid token claims")
				return
			}

			roleClaim, _ := claims["role"].(string)
			role, ok := identity.ParseRole(roleClaim)
			if !ok {
				response.Unauthorized(w, "Invalid token claims")
				return
			}

			actor := identity.Actor{EmployeeID: employeeID, Role: role}
			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext returns the actor resolved by AuthRequired. The
// zero Actor means the middleware did not run.
func ActorFromContext(ctx context.Context) identity.Actor {
	actor, _ := ctx.Value(actorKey).(identity.Actor)
	return actor
}
