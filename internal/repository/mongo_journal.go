package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/daybook-app/daybook-backend/internal/common"
	"github.com/daybook-app/daybook-backend/internal/models"
)

type MongoJournalRepository struct {
	col *mongo.Collection
}

func NewMongoJournalRepository(db *mongo.Database) *MongoJournalRepository {
	return &MongoJournalRepository{col: db.Collection("journal_entries")}
}

func (r *MongoJournalRepository) Insert(ctx context.Context, entry *models.JournalEntry) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *MongoJournalRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	var entry models.JournalEntry
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("journal entry %s: %w", id.Hex(), common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoJournalRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.JournalEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoJournalRepository) Update(ctx context.Context, entry *models.JournalEntry) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("journal entry %s: %w", entry.ID.Hex(), common.ErrNotFound)
	}
	return nil
}

func (r *MongoJournalRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
