package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"condogate/internal/authz"
	"condogate/internal/domain"
	"condogate/internal/jwttoken"
	"condogate/internal/platform/metrics"
)

// JWTValidator defines the interface for validating JWT tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*jwttoken.Claims, error)
}

// Context keys for storing authenticated user information.
type contextKeyUserID struct{}
type contextKeySessionID struct{}
type contextKeyRole struct{}

var (
	ContextKeyUserID    = contextKeyUserID{}
	ContextKeySessionID = contextKeySessionID{}
	ContextKeyRole      = contextKeyRole{}
)

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	if !ok {
		return ""
	}
	return userID
}

// GetSessionID retrieves the session ID from the context.
func GetSessionID(ctx context.Context) string {
	sessionID, ok := ctx.Value(ContextKeySessionID).(string)
	if !ok {
		return ""
	}
	return sessionID
}

// GetRole retrieves the authenticated role from the context.
func GetRole(ctx context.Context) domain.Role {
	role, ok := ctx.Value(ContextKeyRole).(domain.Role)
	if !ok {
		return ""
	}
	return role
}

// RequireAuth validates the bearer token and stores the identity in the
// request context. Unauthenticated requests get the login redirect target
// plus the originally requested path, so the client can resume there after
// logging in.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok {
				logger.WarnContext(r.Context(), "unauthorized access - missing token",
					"request_id", GetRequestID(r.Context()),
					"path", r.URL.Path,
				)
				writeUnauthenticated(w, r.URL.Path)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				writeUnauthenticated(w, r.URL.Path)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextKeySessionID, claims.SessionID)
			ctx = context.WithValue(ctx, ContextKeyRole, domain.Role(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles runs the authorization guard over the authenticated identity.
// A redirect decision becomes a 403 carrying the role-specific fallback
// destination; the client navigates there instead of rendering the screen.
func RequireRoles(requiredRoles []domain.Role, m *metrics.Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := &domain.User{ID: GetUserID(r.Context()), Role: GetRole(r.Context())}
			if user.ID == "" {
				writeUnauthenticated(w, r.URL.Path)
				return
			}
			decision := authz.Decide(authz.StateAuthenticated, user, requiredRoles, r.URL.Path)
			if decision.Outcome == authz.OutcomeRedirect {
				m.IncrementNavigationDenied()
				logger.WarnContext(r.Context(), "navigation denied",
					"request_id", GetRequestID(r.Context()),
					"path", r.URL.Path,
					"role", string(user.Role),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":    "forbidden",
					"redirect": decision.Target,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter, fromPath string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":    "unauthorized",
		"redirect": authz.LoginPath,
		"from":     fromPath,
	})
}
