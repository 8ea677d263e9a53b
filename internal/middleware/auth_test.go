package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/repository"
	"github.com/daybook-app/daybook-backend/internal/services"
)

func TestRequiresAuthPolicyTable(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/public/health-check", false},
		{"/public/create-user", false},
		{"/user", true},
		{"/user/", true},
		{"/journal", true},
		{"/journal/id/abc", true},
		{"/journalx", false},
		{"/", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresAuth(tt.path))
		})
	}
}

func newAuthTestHandler(t *testing.T) http.Handler {
	t.Helper()
	users := services.NewUserService(repository.NewMemoryUserRepository())
	_, err := users.Create(context.Background(), "alice", "wonderland")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ := Principal(r.Context())
		w.Write([]byte(principal))
	})
	return BasicAuth(users)(next)
}

func TestBasicAuthAllowsOpenRoutes(t *testing.T) {
	handler := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/public/health-check", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBasicAuthRejectsMissingCredentials(t *testing.T) {
	handler := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBasicAuthRejectsBadCredentials(t *testing.T) {
	handler := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	req.SetBasicAuth("alice", "not-her-password")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBasicAuthAttachesPrincipal(t *testing.T) {
	handler := newAuthTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	req.SetBasicAuth("alice", "wonderland")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}
