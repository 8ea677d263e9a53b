package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daybook-app/daybook-backend/internal/handlers"
)

func TestHealthCheck(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/public/health-check", nil, "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ok", rec.Body.String())
}

func TestCreateUser(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/public/create-user",
		handlers.CreateUserRequest{Username: "alice", Password: "wonderland"}, "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())
}

func TestCreateUserMissingPassword(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/public/create-user",
		handlers.CreateUserRequest{Username: "alice"}, "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUserDuplicate(t *testing.T) {
	server, users := newTestServer(t)
	signUp(t, users, "alice", "wonderland")

	rec := doJSON(t, server, http.MethodPost, "/public/create-user",
		handlers.CreateUserRequest{Username: "alice", Password: "other"}, "", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
