package http

import (
	"net/http"

	"github.com/cobaltlane/taskhub/internal/service"
	"github.com/cobaltlane/taskhub/pkg/httpx"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP creates a new account from an email and password. Duplicate
// emails answer 409 regardless of which concurrent registration lost the
// race.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RegisterResponse{UserID: userID})
}
