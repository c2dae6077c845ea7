package httptransport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"condogate/internal/domain"
	"condogate/internal/export"
	"condogate/internal/ledger"
	"condogate/internal/transport/http/shared"
	dErrors "condogate/pkg/domain-errors"
)

func (h *Handler) handleDirectorySearch(w http.ResponseWriter, r *http.Request) {
	entries, err := h.directory.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

type registerAccessRequest struct {
	PersonID  string `json:"person_id"`
	VehicleID string `json:"vehicle_id"`
	Direction string `json:"direction"`
}

func (h *Handler) handleRegisterAccess(w http.ResponseWriter, r *http.Request) {
	var req registerAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	event, err := h.ledger.Register(r.Context(), req.PersonID, req.VehicleID, domain.Direction(req.Direction))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toAccessEventResponse(event))
}

func (h *Handler) handleTodayAccesses(w http.ResponseWriter, r *http.Request) {
	events, err := h.ledger.Today(r.Context(), time.Now())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"events": toAccessEventResponses(events)})
}

func (h *Handler) handleAccessHistory(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	events, err := h.ledger.Filter(r.Context(), criteria)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"events": toAccessEventResponses(events)})
}

// handleExportCSV serves the filtered history as a CSV download, mirroring the
// filters active on the history screen.
func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	events, err := h.ledger.Filter(r.Context(), criteria)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.CSVFilename(time.Now())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.CSV(events)))
}

func (h *Handler) handleAccessReport(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	events, err := h.ledger.Filter(r.Context(), criteria)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	page, err := export.Report(events, time.Now())
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

func criteriaFromQuery(r *http.Request) (ledger.Criteria, error) {
	criteria := ledger.Criteria{
		FreeText:  r.URL.Query().Get("q"),
		Direction: r.URL.Query().Get("direction"),
	}
	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return ledger.Criteria{}, dErrors.New(dErrors.CodeBadRequest, "date must be formatted as YYYY-MM-DD")
		}
		criteria.Date = &day
	}
	return criteria, nil
}
