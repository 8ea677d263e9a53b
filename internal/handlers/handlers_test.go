package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/handlers"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/repository"
	"github.com/daybook-app/daybook-backend/internal/routes"
	"github.com/daybook-app/daybook-backend/internal/services"
)

// newTestServer wires the full router against in-memory repositories,
// mirroring the wiring in cmd/server.
func newTestServer(t *testing.T) (http.Handler, *services.UserService) {
	t.Helper()

	userRepo := repository.NewMemoryUserRepository()
	journalRepo := repository.NewMemoryJournalRepository()

	userService := services.NewUserService(userRepo)
	journalService := services.NewJournalService(journalRepo, userRepo)

	r := chi.NewRouter()
	r.Use(middleware.BasicAuth(userService))
	routes.SetupRoutes(r,
		handlers.NewPublicHandler(userService),
		handlers.NewUserHandler(userService),
		handlers.NewJournalHandler(journalService),
	)
	return r, userService
}

func signUp(t *testing.T, svc *services.UserService, username, password string) {
	t.Helper()
	_, err := svc.Create(context.Background(), username, password)
	require.NoError(t, err)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}, user, pass string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.SetBasicAuth(user, pass)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
