package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"condogate/internal/domain"
	"condogate/internal/jwttoken"
	dErrors "condogate/pkg/domain-errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("honors an upstream id", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "upstream-id")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "upstream-id", seen)
		assert.Equal(t, "upstream-id", rr.Header().Get("X-Request-ID"))
	})

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		handler := RequestID(okHandler())
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}

func TestRecovery(t *testing.T) {
	handler := Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestContentTypeJSON(t *testing.T) {
	handler := ContentTypeJSON(okHandler())

	t.Run("rejects non-JSON writes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("Content-Type", "text/plain")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})

	t.Run("accepts JSON with charset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("never blocks reads", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/access/history", nil)
		req.Header.Set("Content-Type", "text/plain")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

type fakeValidator struct {
	claims *jwttoken.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*jwttoken.Claims, error) {
	return f.claims, f.err
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token exposes identity to the handler", func(t *testing.T) {
		validator := fakeValidator{claims: &jwttoken.Claims{
			UserID: "user-1", SessionID: "session-1", Role: string(domain.RoleGatekeeper),
		}}

		var userID, sessionID string
		var role domain.Role
		handler := RequireAuth(validator, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID = GetUserID(r.Context())
			sessionID = GetSessionID(r.Context())
			role = GetRole(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "user-1", userID)
		assert.Equal(t, "session-1", sessionID)
		assert.Equal(t, domain.RoleGatekeeper, role)
	})

	t.Run("missing bearer prefix is unauthenticated", func(t *testing.T) {
		handler := RequireAuth(fakeValidator{}, discardLogger())(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Authorization", "some-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token is unauthenticated", func(t *testing.T) {
		validator := fakeValidator{err: dErrors.New(dErrors.CodeUnauthorized, "invalid token")}
		handler := RequireAuth(validator, discardLogger())(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
