package v1handler

import (
	"discovery/internal/catalog"
	"discovery/pkg/domain"
	"discovery/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SaveRequest is the body of POST /saves.
type SaveRequest struct {
	Kind domain.ItemKind `json:"kind"`
	ID   string          `json:"id"`
	List string          `json:"list,omitempty"`
}

// SaveList is the response of GET /saves.
type SaveList struct {
	Items []domain.Save `json:"items"`
}

// InteractionRequest is the body of POST /interactions.
type InteractionRequest struct {
	Kind   domain.ItemKind `json:"kind"`
	ID     string          `json:"id"`
	Action domain.Action   `json:"action"`
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in catalog.EventInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)

		return
	}

	event, err := h.deps.Catalog.CreateEvent(r.Context(), GetUserIDFromContext(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, event)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	event, err := h.deps.Catalog.Event(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, event)
}

func (h *Handler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var in catalog.PlaceInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)

		return
	}

	place, err := h.deps.Catalog.CreatePlace(r.Context(), GetUserIDFromContext(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, place)
}

func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	place, err := h.deps.Catalog.Place(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, place)
}

func (h *Handler) ListSaves(w http.ResponseWriter, r *http.Request) {
	saves, err := h.deps.Catalog.UserSaves(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if saves == nil {
		saves = []domain.Save{}
	}

	writeJSON(r.Context(), w, http.StatusOK, SaveList{Items: saves})
}

func (h *Handler) CreateSave(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	ref, err := parseRef(req.Kind, req.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	save, err := h.deps.Catalog.Save(r.Context(), GetUserIDFromContext(r.Context()), ref, req.List)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, save)
}

// DeleteSave removes a save from the list given by the "list" query
// parameter, or from the default list.
func (h *Handler) DeleteSave(w http.ResponseWriter, r *http.Request) {
	ref, err := parseRef(domain.ItemKind(chi.URLParam(r, "kind")), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.Unsave(r.Context(),
		GetUserIDFromContext(r.Context()), ref, r.URL.Query().Get("list")); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	curatorID, err := pathUUID(r, "curatorID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.Follow(r.Context(),
		GetUserIDFromContext(r.Context()), domain.UserID(curatorID)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	curatorID, err := pathUUID(r, "curatorID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.Unfollow(r.Context(),
		GetUserIDFromContext(r.Context()), domain.UserID(curatorID)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	var req InteractionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	ref, err := parseRef(req.Kind, req.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.RecordInteraction(r.Context(),
		GetUserIDFromContext(r.Context()), ref, req.Action); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseRef(kind domain.ItemKind, id string) (domain.ItemRef, error) {
	if !kind.Valid() {
		return domain.ItemRef{}, serrors.With(serrors.ErrBadRequest, "unknown kind %q", kind)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.ItemRef{}, serrors.Wrap(serrors.ErrBadRequest, err, "id must be a UUID")
	}

	return domain.ItemRef{Kind: kind, ID: parsed}, nil
}
