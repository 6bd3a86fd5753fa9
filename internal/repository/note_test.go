package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// test entity kind: a note with a unique title and a defaulted pinned flag

type noteModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	Pinned    bool               `bson:"pinned"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type note struct {
	ID        string
	Title     string
	Body      string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m noteModel) Entity() note {
	return note{
		ID:        m.ID.Hex(),
		Title:     m.Title,
		Body:      m.Body,
		Pinned:    m.Pinned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type noteCreate struct {
	Title  string `bson:"title"`
	Body   string `bson:"body"`
	Pinned *bool  `bson:"pinned,omitempty"`
}

type noteUpdate struct {
	Title  *string `bson:"title,omitempty"`
	Body   *string `bson:"body,omitempty"`
	Pinned *bool   `bson:"pinned,omitempty"`
}

func noteDefaults(schema *noteCreate) bson.D {
	pinned := schema.Pinned != nil && *schema.Pinned
	return bson.D{{Key: "pinned", Value: pinned}}
}

func newNoteMemory() *Memory[noteCreate, noteUpdate, noteModel, note] {
	return NewMemory[noteCreate, noteUpdate, noteModel, note]("title", noteDefaults)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
