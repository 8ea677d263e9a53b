package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/services"
)

type PublicHandler struct {
	users *services.UserService
}

func NewPublicHandler(users *services.UserService) *PublicHandler {
	return &PublicHandler{users: users}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HealthCheck responds with the literal body "Ok".
func (h *PublicHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Ok"))
}

// CreateUser handles open sign-up.
func (h *PublicHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.users.Create(r.Context(), req.Username, req.Password); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusOK, true)
}
