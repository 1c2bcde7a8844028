package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cobaltlane/taskhub/internal/service"
	"github.com/cobaltlane/taskhub/internal/store"
	"github.com/cobaltlane/taskhub/pkg/httpx"
	"github.com/cobaltlane/taskhub/pkg/slogx"
)

type MeResponse struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the authenticated user's own profile.
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.AuthService.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		// A token whose subject no longer exists is still just a bad
		// credential from the outside.
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		slogx.FromContext(ctx).Warn("failed to load user", slog.String("user_id", userID), slog.Any("err", err))
		httpx.WriteError(w, http.StatusInternalServerError, "server_error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, MeResponse{
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
