package v1handler

import (
	"discovery/internal/feed"
	"discovery/internal/proximity"
	"net/http"
	"strings"
)

// NearbyList is the response of GET /nearby.
type NearbyList struct {
	Items []proximity.Result `json:"items"`
}

// RefreshResult is the response of POST /suggestions/refresh.
type RefreshResult struct {
	// Enqueued is false when a refresh was already pending.
	Enqueued bool `json:"enqueued"`
}

// GetFeed returns a page of the personalized feed.
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	location, err := queryLocation(q)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	kinds, err := queryKinds(q)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	limit, err := queryInt(q, "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.deps.Feed.Feed(r.Context(), GetUserIDFromContext(r.Context()), feed.Options{
		Location: location,
		Kinds:    kinds,
		Limit:    limit,
		Cursor:   q.Get("cursor"),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if page.Items == nil {
		page.Items = []feed.Scored{}
	}

	writeJSON(r.Context(), w, http.StatusOK, page)
}

// GetNearby searches listings around a point.
func (h *Handler) GetNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := proximity.Query{Category: strings.TrimSpace(q.Get("category"))}

	var err error
	if query.Center, err = queryLocation(q); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.RadiusKm, _, err = queryFloat(q, "radius"); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.Kinds, err = queryKinds(q); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.Limit, err = queryInt(q, "limit"); err != nil {
		h.writeError(w, r, err)

		return
	}
	if query.UpcomingOnly, err = queryBool(q, "upcoming"); err != nil {
		h.writeError(w, r, err)

		return
	}

	results, err := h.deps.Proximity.Nearby(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, NearbyList{Items: results})
}

// GetSuggestions returns the latest suggestion batch of the caller.
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	latest, err := h.deps.Suggestions.Latest(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, latest)
}

// RefreshSuggestions enqueues a regeneration of the caller's suggestions.
func (h *Handler) RefreshSuggestions(w http.ResponseWriter, r *http.Request) {
	enqueued, err := h.deps.Suggestions.Refresh(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusAccepted, RefreshResult{Enqueued: enqueued})
}
