package controller

import (
	"context"
	"discovery/pkg/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger is a dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Liveness always answers 200.
func Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Readiness answers 200 when every dependency responds to Ping within
// timeout, and 503 otherwise.
func Readiness(timeout time.Duration, deps ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				logger.Warn(ctx, "readiness check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))

				return
			}
		}

		_, _ = w.Write([]byte("ok"))
	}
}
