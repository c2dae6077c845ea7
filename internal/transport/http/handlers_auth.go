package httptransport

import (
	"encoding/json"
	"net/http"
	"time"

	"condogate/internal/jwttoken"
	"condogate/internal/platform/middleware"
	"condogate/internal/transport/http/shared"
	dErrors "condogate/pkg/domain-errors"
)

type loginRequest struct {
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.auth.Login(r.Context(), req.NationalID, req.Password, r.UserAgent())
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(result.User),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if err := h.auth.Logout(r.Context(), sessionID); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := &jwttoken.Claims{
		UserID:    middleware.GetUserID(ctx),
		SessionID: middleware.GetSessionID(ctx),
		Role:      string(middleware.GetRole(ctx)),
	}

	user, err := h.auth.CurrentUser(ctx, claims)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
