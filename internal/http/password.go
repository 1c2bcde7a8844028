package http

import (
	"errors"
	"net/http"

	"github.com/cobaltlane/taskhub/internal/service"
	"github.com/cobaltlane/taskhub/internal/store"
	"github.com/cobaltlane/taskhub/pkg/httpx"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP rotates the authenticated user's password. The current
// password is re-verified even though the request already carries a valid
// token, so a stolen token alone cannot take over the account.
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.AuthService.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		// The only not-found this flow can hit is the token's own subject
		// having vanished, which is a credential problem, not a resource.
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
