package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tripoli-karting/tentdesk/internal/http/response"
	"github.com/tripoli-karting/tentdesk/pkg/auth"
	"github.com/tripoli-karting/tentdesk/pkg/logger"
)

// SessionChecker reports whether the live operator session is authenticated.
// Logout flips it immediately, regardless of outstanding tokens.
type SessionChecker interface {
	IsAuthenticated() bool
}

// RequireOperator validates the bearer token and the live session flag.
func RequireOperator(secret string, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Unauthorized(w, "Missing bearer token")
				return
			}

			claims, err := auth.Parse(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil || claims.Role != "operator" {
				response.Unauthorized(w, "Invalid session token")
				return
			}

			if !sessions.IsAuthenticated() {
				response.Unauthorized(w, "Session ended, please log in again")
				return
			}

			ctx := context.WithValue(r.Context(), logger.OperatorKey, claims.Phone)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorPhone extracts the authenticated operator's phone from the context.
func OperatorPhone(ctx context.Context) string {
	if phone, ok := ctx.Value(logger.OperatorKey).(string); ok {
		return phone
	}
	return ""
}
