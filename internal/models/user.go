package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleUser is the default role assigned at sign-up.
const RoleUser = "USER"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"` // Don't return password in JSON

	// Roles are assigned at creation and not settable through the API.
	Roles []string `bson:"roles" json:"roles"`

	// JournalEntries holds the ids of this user's entries, in creation order.
	// The entries themselves live in the journal_entries collection.
	JournalEntries []primitive.ObjectID `bson:"journal_entries" json:"journal_entries"`
}

// OwnsEntry reports whether the given entry id is referenced by this user.
func (u *User) OwnsEntry(id primitive.ObjectID) bool {
	for _, ref := range u.JournalEntries {
		if ref == id {
			return true
		}
	}
	return false
}
