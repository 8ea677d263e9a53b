package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/handlers"
)

func TestUpdateUser(t *testing.T) {
	server, users := newTestServer(t)
	signUp(t, users, "alice", "wonderland")

	rec := doJSON(t, server, http.MethodPut, "/user",
		handlers.UpdateUserRequest{Username: "alice2", Password: "new-password"},
		"alice", "wonderland")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// The new credentials work, the old ones do not
	_, err := users.Authenticate(context.Background(), "alice2", "new-password")
	assert.NoError(t, err)
	_, err = users.Authenticate(context.Background(), "alice", "wonderland")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestUpdateUserRequiresAuth(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(t, server, http.MethodPut, "/user",
		handlers.UpdateUserRequest{Username: "alice", Password: "x"}, "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	server, users := newTestServer(t)
	signUp(t, users, "alice", "wonderland")

	rec := doJSON(t, server, http.MethodDelete, "/user", nil, "alice", "wonderland")
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := users.FindByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Deleted credentials no longer authenticate
	rec = doJSON(t, server, http.MethodDelete, "/user", nil, "alice", "wonderland")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
