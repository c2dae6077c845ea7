package testutil

import (
	"context"
	"net/http"

	"condogate/internal/domain"
	"condogate/internal/platform/middleware"
)

// WithAuth stamps a request context the way the auth middleware would for an
// authenticated caller, so handlers can be tested without minting tokens.
func WithAuth(req *http.Request, userID, sessionID string, role domain.Role) *http.Request {
	ctx := req.Context()
	if userID != "" {
		ctx = context.WithValue(ctx, middleware.ContextKeyUserID, userID)
	}
	if sessionID != "" {
		ctx = context.WithValue(ctx, middleware.ContextKeySessionID, sessionID)
	}
	if role != "" {
		ctx = context.WithValue(ctx, middleware.ContextKeyRole, role)
	}
	return req.WithContext(ctx)
}
