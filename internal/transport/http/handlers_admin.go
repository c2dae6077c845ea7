package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"condogate/internal/admin"
	"condogate/internal/transport/http/shared"
	dErrors "condogate/pkg/domain-errors"
)

func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.admin.ListPeople(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	responses := make([]personResponse, 0, len(people))
	for _, p := range people {
		responses = append(responses, toPersonResponse(p))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"people": responses})
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var input admin.PersonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	person, err := h.admin.CreatePerson(r.Context(), input)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toPersonResponse(person))
}

func (h *Handler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	var input admin.PersonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	person, err := h.admin.UpdatePerson(r.Context(), chi.URLParam(r, "personID"), input)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toPersonResponse(person))
}

func (h *Handler) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.DeletePerson(r.Context(), chi.URLParam(r, "personID")); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListHouses(w http.ResponseWriter, r *http.Request) {
	houses, err := h.admin.ListHouses(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	responses := make([]houseResponse, 0, len(houses))
	for _, house := range houses {
		responses = append(responses, toHouseResponse(house))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"houses": responses})
}

func (h *Handler) handleCreateHouse(w http.ResponseWriter, r *http.Request) {
	var input admin.HouseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	house, err := h.admin.CreateHouse(r.Context(), input)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toHouseResponse(house))
}

func (h *Handler) handleUpdateHouse(w http.ResponseWriter, r *http.Request) {
	var input admin.HouseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	house, err := h.admin.UpdateHouse(r.Context(), chi.URLParam(r, "houseID"), input)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toHouseResponse(house))
}

func (h *Handler) handleDeleteHouse(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.DeleteHouse(r.Context(), chi.URLParam(r, "houseID")); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
