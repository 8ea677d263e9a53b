package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/repository"
	"github.com/daybook-app/daybook-backend/pkg/utils"
)

// UserService is the user directory: it owns account creation, lookup,
// profile updates and deletion. Passwords are stored only as bcrypt hashes.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create signs up a new user with the default USER role. Fails with
// common.ErrValidation when username or password is missing and with
// common.ErrConflict when the username is already taken.
func (s *UserService) Create(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", common.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("password is required: %w", common.ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             primitive.NewObjectID(),
		Username:       username,
		Password:       hash,
		Roles:          []string{models.RoleUser},
		JournalEntries: []primitive.ObjectID{},
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// Update overwrites the caller's username and password. The caller is
// identified by the authenticated username, never by the request body.
// The new password is re-hashed before it is stored.
func (s *UserService) Update(ctx context.Context, currentUsername, newUsername, newPassword string) error {
	user, err := s.users.FindByUsername(ctx, currentUsername)
	if err != nil {
		return err
	}

	user.Username = newUsername
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash

	return s.users.Update(ctx, user)
}

// DeleteByUsername removes the account. Deleting an absent user is a no-op.
func (s *UserService) DeleteByUsername(ctx context.Context, username string) error {
	return s.users.DeleteByUsername(ctx, username)
}

func (s *UserService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return s.users.DeleteByID(ctx, id)
}

func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}

// Authenticate verifies the given credentials and returns the matching
// user. Unknown usernames and wrong passwords both come back as
// common.ErrUnauthorized so callers cannot probe for valid accounts.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}
	return user, nil
}
