package serrors

import (
	"errors"
	"net/http"
)

// statusByKind maps the default kinds to HTTP status codes.
var statusByKind = map[Kind]int{ //nolint: gochecknoglobals
	ErrNotFound:     http.StatusNotFound,
	ErrUnauthorized: http.StatusUnauthorized,
	ErrForbidden:    http.StatusForbidden,
	ErrBadRequest:   http.StatusBadRequest,
	ErrConflict:     http.StatusConflict,
	ErrInternal:     http.StatusInternalServerError,
	ErrTimeout:      http.StatusGatewayTimeout,
	ErrUnavailable:  http.StatusServiceUnavailable,
	ErrRateLimited:  http.StatusTooManyRequests,
}

// defaultMessages are returned to clients when an error carries no message of
// its own, or when its message must not leak (internal errors).
var defaultMessages = map[Kind]string{ //nolint: gochecknoglobals
	ErrNotFound:     "resource not found",
	ErrUnauthorized: "unauthorized",
	ErrForbidden:    "forbidden",
	ErrBadRequest:   "bad request",
	ErrConflict:     "conflict",
	ErrInternal:     "internal error",
	ErrTimeout:      "request timed out",
	ErrUnavailable:  "service unavailable",
	ErrRateLimited:  "too many requests",
}

// Public describes err the way it may be shown to an API client: the HTTP
// status, the kind code and a message. Errors without a known kind, and all
// internal errors, are reported as INTERNAL with a generic message.
func Public(err error) (int, string, string) {
	var k Kind
	if !errors.As(err, &k) {
		k = ErrInternal
	}

	status, ok := statusByKind[k]
	if !ok || k == ErrInternal {
		return http.StatusInternalServerError, ErrInternal.Error(), defaultMessages[ErrInternal]
	}

	msg := defaultMessages[k]
	var serr *Error
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	return status, k.Error(), msg
}
