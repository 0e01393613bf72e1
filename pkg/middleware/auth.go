package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/utils"
)

// TokenResolver maps a bearer token back to the user it was issued for.
type TokenResolver interface {
	Resolve(token string) (uuid.UUID, bool)
}

// UserLookup loads a user record for the authenticated request context.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth rejects requests without a valid session token and stashes the
// user id and role in the request context.
func Auth(tokens TokenResolver, users UserLookup, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "missing or malformed authorization header")
				return
			}

			userID, ok := tokens.Resolve(token)
			if !ok {
				utils.ResponseUnauthorized(w, "invalid or expired token")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				log.Error("load user for token", zap.Error(err))
				utils.ResponseInternalError(w, "internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "invalid or expired token")
				return
			}
			if user.Status != entity.UserStatusActive {
				utils.ResponseForbidden(w, "account is disabled")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin allows only users carrying the admin role. It must run after Auth.
func Admin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetUserRoleFromContext(r.Context())
			if !ok || role != entity.RoleAdmin {
				utils.ResponseForbidden(w, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
