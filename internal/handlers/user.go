package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Update overwrites the authenticated user's own username and password.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.users.Update(r.Context(), principal, req.Username, req.Password); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes the authenticated user's own account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.users.DeleteByUsername(r.Context(), principal); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
