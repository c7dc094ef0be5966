package v1handler

import (
	"context"
	"discovery/internal/catalog"
	"discovery/internal/feed"
	"discovery/internal/proximity"
	"discovery/internal/suggestions"
	"discovery/pkg/logger"
	"discovery/pkg/serrors"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Deps are the services behind the v1 API.
type Deps struct {
	Feed        feed.Ranker
	Proximity   proximity.Finder
	Suggestions suggestions.Suggester
	Catalog     catalog.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers every v1 endpoint on r. Callers are expected to mount r
// under /v1 behind the bearer authentication middleware.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/feed", h.GetFeed)
	r.Get("/nearby", h.GetNearby)

	r.Get("/suggestions", h.GetSuggestions)
	r.Post("/suggestions/refresh", h.RefreshSuggestions)

	r.Post("/events", h.CreateEvent)
	r.Get("/events/{id}", h.GetEvent)
	r.Post("/places", h.CreatePlace)
	r.Get("/places/{id}", h.GetPlace)

	r.Get("/saves", h.ListSaves)
	r.Post("/saves", h.CreateSave)
	r.Delete("/saves/{kind}/{id}", h.DeleteSave)

	r.Put("/follows/{curatorID}", h.Follow)
	r.Delete("/follows/{curatorID}", h.Unfollow)

	r.Post("/interactions", h.RecordInteraction)
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an Error with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

// NewError maps err to the response a client sees. Internal errors are logged
// and reported without details.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	status, code, message := serrors.Public(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response: Error{
			Code:    code,
			Message: message,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decodeJSON reads a JSON body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
