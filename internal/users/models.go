package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Model is the stored form of a user document.
type Model struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	UID       string             `bson:"uid"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// User is the public projection returned to callers.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UID       string    `json:"uid"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Model) Entity() User {
	return User{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		UID:       m.UID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateSchema carries the caller-supplied fields for a new user. The name
// is the uniqueness key; identifier and timestamps are never accepted here.
type CreateSchema struct {
	Name string `json:"name" bson:"name" binding:"required"`
	UID  string `json:"uid" bson:"uid" binding:"required"`
}

// UpdateSchema is a merge patch: absent fields are left untouched in store.
type UpdateSchema struct {
	Name *string `json:"name,omitempty" bson:"name,omitempty"`
	UID  *string `json:"uid,omitempty" bson:"uid,omitempty"`
}
