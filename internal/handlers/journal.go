package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/services"
)

type JournalHandler struct {
	journal *services.JournalService
}

func NewJournalHandler(journal *services.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

type JournalEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// List returns the authenticated user's entries in creation order.
// A user with zero entries gets 404, not an empty 200.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	entries, err := h.journal.ListForUser(r.Context(), principal)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if len(entries) == 0 {
		common.RespondWithError(w, http.StatusNotFound, "No journal entries found")
		return
	}

	common.RespondWithJSON(w, http.StatusOK, entries)
}

// Create adds a new entry owned by the authenticated user.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.Principal(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req JournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry := models.JournalEntry{Title: req.Title, Content: req.Content}
	if err := h.journal.Create(r.Context(), principal, &entry); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, entry)
}

// GetByID fetches one entry by its id.
func (h *JournalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	entry, err := h.journal.FindByID(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusOK, entry)
}

// UpdateByID patches an entry's title and content. Empty fields in the
// request leave the stored values untouched; the date is never changed.
func (h *JournalHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	if !reconcilePathUser(w, r) {
		return
	}
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	var req JournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := models.JournalEntry{Title: req.Title, Content: req.Content}
	entry, err := h.journal.Update(r.Context(), id, &patch)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusOK, entry)
}

// DeleteByID removes an entry and its reference on the owner.
func (h *JournalHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	if !reconcilePathUser(w, r) {
		return
	}
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	principal, _ := middleware.Principal(r.Context())
	if err := h.journal.Delete(r.Context(), id, principal); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// entryID parses the {id} path parameter. A malformed id is a 400.
func entryID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid journal entry id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// reconcilePathUser rejects requests whose {username} path segment names
// someone other than the authenticated principal. The path value is kept
// for route compatibility only; identity always comes from authentication.
func reconcilePathUser(w http.ResponseWriter, r *http.Request) bool {
	principal, ok := middleware.Principal(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return false
	}
	if pathUser := chi.URLParam(r, "username"); pathUser != "" && pathUser != principal {
		common.RespondWithError(w, http.StatusForbidden, "Cannot act on another user's journal")
		return false
	}
	return true
}
