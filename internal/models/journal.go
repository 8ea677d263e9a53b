package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry represents a private journaling entry owned by a user
type JournalEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content,omitempty" json:"content,omitempty"`
	Date    time.Time          `bson:"date" json:"date"` // set server-side at creation, never re-set
}
