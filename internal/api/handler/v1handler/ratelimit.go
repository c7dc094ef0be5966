package v1handler

import (
	"discovery/pkg/serrors"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits each authenticated user to requestsPerMinute requests. It
// must run after the bearer middleware.
func (h *Handler) RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(requestsPerMinute, time.Minute,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return GetUserIDFromContext(r.Context()).String(), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			h.writeError(w, r, serrors.KindOnly(serrors.ErrRateLimited))
		}),
	)
}
