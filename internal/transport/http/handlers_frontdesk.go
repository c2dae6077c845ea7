package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"condogate/internal/frontdesk"
	"condogate/internal/platform/middleware"
	"condogate/internal/transport/http/shared"
	dErrors "condogate/pkg/domain-errors"
)

func (h *Handler) handleListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveries.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	responses := make([]deliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		responses = append(responses, toDeliveryResponse(d))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"deliveries": responses})
}

func (h *Handler) handleCreateDelivery(w http.ResponseWriter, r *http.Request) {
	var input frontdesk.DeliveryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	delivery, err := h.deliveries.Create(r.Context(), input)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toDeliveryResponse(delivery))
}

func (h *Handler) handleToggleDelivery(w http.ResponseWriter, r *http.Request) {
	delivery, err := h.deliveries.ToggleStatus(r.Context(), chi.URLParam(r, "deliveryID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toDeliveryResponse(delivery))
}

func (h *Handler) handleListNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.notices.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	userID := middleware.GetUserID(r.Context())
	responses := make([]noticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, toNoticeResponse(n, userID))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"notices": responses})
}

func (h *Handler) handleCreateNotice(w http.ResponseWriter, r *http.Request) {
	var input frontdesk.NoticeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	notice, err := h.notices.Create(r.Context(), input)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toNoticeResponse(notice, middleware.GetUserID(r.Context())))
}

func (h *Handler) handleMarkNoticeViewed(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notice, err := h.notices.MarkViewed(r.Context(), chi.URLParam(r, "noticeID"), userID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toNoticeResponse(notice, userID))
}

func (h *Handler) handleListOccurrences(w http.ResponseWriter, r *http.Request) {
	occurrences, err := h.occurrences.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	responses := make([]occurrenceResponse, 0, len(occurrences))
	for _, o := range occurrences {
		responses = append(responses, toOccurrenceResponse(o))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"occurrences": responses})
}

func (h *Handler) handleCreateOccurrence(w http.ResponseWriter, r *http.Request) {
	var input frontdesk.OccurrenceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	occurrence, err := h.occurrences.Create(r.Context(), input)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toOccurrenceResponse(occurrence))
}

type resolveOccurrenceRequest struct {
	Comment string `json:"comment"`
}

func (h *Handler) handleResolveOccurrence(w http.ResponseWriter, r *http.Request) {
	var req resolveOccurrenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	occurrence, err := h.occurrences.Resolve(r.Context(), chi.URLParam(r, "occurrenceID"), req.Comment)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toOccurrenceResponse(occurrence))
}
