package repository

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/models"
)

// In-memory implementations backing the test suites. They honor the same
// error contracts as the Mongo implementations, including username
// uniqueness on both insert and update.

type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("username %q already taken: %w", user.Username, common.ErrConflict)
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), common.ErrNotFound)
	}
	found := u
	return &found, nil
}

func (r *MemoryUserRepository) All(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user %s: %w", user.ID.Hex(), common.ErrNotFound)
	}
	for id, u := range r.users {
		if id != user.ID && u.Username == user.Username {
			return fmt.Errorf("username %q already taken: %w", user.Username, common.ErrConflict)
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) DeleteByUsername(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.Username == username {
			delete(r.users, id)
			return nil
		}
	}
	return nil
}

func (r *MemoryUserRepository) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type MemoryJournalRepository struct {
	mu      sync.Mutex
	entries map[primitive.ObjectID]models.JournalEntry
}

func NewMemoryJournalRepository() *MemoryJournalRepository {
	return &MemoryJournalRepository{entries: make(map[primitive.ObjectID]models.JournalEntry)}
}

func (r *MemoryJournalRepository) Insert(_ context.Context, entry *models.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *MemoryJournalRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("journal entry %s: %w", id.Hex(), common.ErrNotFound)
	}
	found := e
	return &found, nil
}

func (r *MemoryJournalRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JournalEntry
	for _, id := range ids {
		if e, ok := r.entries[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryJournalRepository) Update(_ context.Context, entry *models.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return fmt.Errorf("journal entry %s: %w", entry.ID.Hex(), common.ErrNotFound)
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *MemoryJournalRepository) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}
