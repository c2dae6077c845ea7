package httptransport

import (
	"net/http"
	"time"

	"condogate/internal/authz"
	"condogate/internal/domain"
	"condogate/internal/platform/middleware"
	"condogate/internal/transport/http/shared"
)

// handleNavigation returns the menu entries visible to the caller's role plus
// the dashboard path the client should land on.
func (h *Handler) handleNavigation(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetRole(r.Context())
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"menu": authz.MenuFor(role),
		"home": authz.FallbackFor(role),
	})
}

type dashboardResponse struct {
	PeopleTotal        int `json:"people_total"`
	HousesTotal        int `json:"houses_total"`
	AccessesToday      int `json:"accesses_today"`
	PendingDeliveries  int `json:"pending_deliveries"`
	UnreadNotices      int `json:"unread_notices"`
	PendingOccurrences int `json:"pending_occurrences"`
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	people, err := h.admin.ListPeople(ctx)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	houses, err := h.admin.ListHouses(ctx)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	todays, err := h.ledger.Today(ctx, time.Now())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	pendingDeliveries, err := h.deliveries.PendingCount(ctx)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	unreadNotices, err := h.notices.UnreadCount(ctx, middleware.GetUserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	pendingOccurrences, err := h.occurrences.List(ctx, string(domain.OccurrencePending))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, dashboardResponse{
		PeopleTotal:        len(people),
		HousesTotal:        len(houses),
		AccessesToday:      len(todays),
		PendingDeliveries:  pendingDeliveries,
		UnreadNotices:      unreadNotices,
		PendingOccurrences: len(pendingOccurrences),
	})
}
