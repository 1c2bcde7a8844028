package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cobaltlane/taskhub/internal/service"
	"github.com/cobaltlane/taskhub/internal/store"
	"github.com/cobaltlane/taskhub/pkg/httpx"
	"github.com/cobaltlane/taskhub/pkg/slogx"
)

// writeServiceError maps service-layer sentinels onto the uniform error
// envelope. Anything unmapped is a server fault: logged in full, surfaced
// as a bare 500 so internals never reach the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrTitleRequired):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, service.ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthenticated):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found")
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("path", r.URL.Path), slog.Any("err", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error")
	}
}

// decodeJSON parses a JSON request body into dst, rejecting unknown
// fields. A false return means the 400 has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := newStrictDecoder(r)
	if err := dec.Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
		return false
	}
	return true
}
