// Package repository defines the persistence contracts for the two
// collections and their MongoDB implementations. Services depend on the
// interfaces only; errors surface as the sentinels in internal/common.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// UserRepository owns the users collection.
type UserRepository interface {
	// Insert stores a new user. Returns common.ErrConflict when the
	// username is already taken.
	Insert(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	// Update replaces the stored document matching user.ID.
	Update(ctx context.Context, user *models.User) error
	// DeleteByUsername is idempotent: deleting an absent user is not an error.
	DeleteByUsername(ctx context.Context, username string) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// JournalRepository owns the journal_entries collection.
type JournalRepository interface {
	Insert(ctx context.Context, entry *models.JournalEntry) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.JournalEntry, error)
	// FindByIDs returns the entries whose ids appear in ids, in no
	// particular order. Missing ids are skipped silently.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.JournalEntry, error)
	Update(ctx context.Context, entry *models.JournalEntry) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
