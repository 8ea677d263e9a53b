package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/repository"
)

// JournalService is the journal ledger: it owns journal entries and keeps
// the denormalized reference list on the owning user in step with them.
//
// The owner+entry writes are two independent store operations, not a
// transaction. A failure between them can leave a persisted entry that the
// owner's list never picked up (or, on delete, a dangling reference already
// removed). Errors are surfaced; nothing is rolled back.
type JournalService struct {
	entries repository.JournalRepository
	users   repository.UserRepository
}

func NewJournalService(entries repository.JournalRepository, users repository.UserRepository) *JournalService {
	return &JournalService{entries: entries, users: users}
}

// Create persists a new entry for ownerUsername, stamping its date, and
// appends its id to the owner's entry list. Fails with common.ErrNotFound
// when the owner does not exist and common.ErrValidation when the title is
// missing.
func (s *JournalService) Create(ctx context.Context, ownerUsername string, entry *models.JournalEntry) error {
	if strings.TrimSpace(entry.Title) == "" {
		return fmt.Errorf("title is required: %w", common.ErrValidation)
	}

	owner, err := s.users.FindByUsername(ctx, ownerUsername)
	if err != nil {
		return err
	}

	entry.ID = primitive.NewObjectID()
	entry.Date = time.Now()

	if err := s.entries.Insert(ctx, entry); err != nil {
		return fmt.Errorf("saving journal entry: %w", err)
	}

	owner.JournalEntries = append(owner.JournalEntries, entry.ID)
	if err := s.users.Update(ctx, owner); err != nil {
		// The entry is already persisted; the owner's list missed it.
		return fmt.Errorf("attaching entry %s to user %q: %w", entry.ID.Hex(), ownerUsername, err)
	}
	return nil
}

func (s *JournalService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.JournalEntry, error) {
	return s.entries.FindByID(ctx, id)
}

// ListForUser resolves the owner's reference list into entries, preserving
// creation order. Fails with common.ErrNotFound when the owner is unknown;
// a user with no entries yields an empty slice.
func (s *JournalService) ListForUser(ctx context.Context, ownerUsername string) ([]models.JournalEntry, error) {
	owner, err := s.users.FindByUsername(ctx, ownerUsername)
	if err != nil {
		return nil, err
	}
	if len(owner.JournalEntries) == 0 {
		return nil, nil
	}

	found, err := s.entries.FindByIDs(ctx, owner.JournalEntries)
	if err != nil {
		return nil, err
	}

	// The store does not guarantee $in result order; reorder to match the
	// owner's list.
	byID := make(map[primitive.ObjectID]models.JournalEntry, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}
	entries := make([]models.JournalEntry, 0, len(found))
	for _, id := range owner.JournalEntries {
		if e, ok := byID[id]; ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Update patches title and content in place. Each field is replaced only
// when the patch carries a non-empty value; the date is never touched.
// Returns the updated entry, or common.ErrNotFound for an unknown id.
func (s *JournalService) Update(ctx context.Context, id primitive.ObjectID, patch *models.JournalEntry) (*models.JournalEntry, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		entry.Title = patch.Title
	}
	if patch.Content != "" {
		entry.Content = patch.Content
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes the entry's reference from the owner's list, then deletes
// the entry itself. Same two-step caveat as Create: the reference removal
// can succeed while the entry delete fails.
func (s *JournalService) Delete(ctx context.Context, id primitive.ObjectID, ownerUsername string) error {
	owner, err := s.users.FindByUsername(ctx, ownerUsername)
	if err != nil {
		return err
	}

	kept := owner.JournalEntries[:0]
	for _, ref := range owner.JournalEntries {
		if ref != id {
			kept = append(kept, ref)
		}
	}
	owner.JournalEntries = kept

	if err := s.users.Update(ctx, owner); err != nil {
		return fmt.Errorf("detaching entry %s from user %q: %w", id.Hex(), ownerUsername, err)
	}
	if err := s.entries.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting journal entry %s: %w", id.Hex(), err)
	}
	return nil
}
