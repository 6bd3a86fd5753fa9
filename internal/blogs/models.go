package blogs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Model is the stored form of a blog post. category and published are
// always present in storage; their defaults are written at creation.
type Model struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Summary   string             `bson:"summary"`
	Content   string             `bson:"content"`
	Category  string             `bson:"category"`
	Published bool               `bson:"published"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// Blog is the public projection returned to callers.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Model) Entity() Blog {
	return Blog{
		ID:        m.ID.Hex(),
		Title:     m.Title,
		Summary:   m.Summary,
		Content:   m.Content,
		Category:  m.Category,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateSchema carries the caller-supplied fields for a new post. The title
// is the uniqueness key. Category and published may be omitted; defaults
// ("" and false) are filled in at creation.
type CreateSchema struct {
	Title     string  `json:"title" bson:"title" binding:"required"`
	Summary   string  `json:"summary" bson:"summary" binding:"required"`
	Content   string  `json:"content" bson:"content" binding:"required"`
	Category  *string `json:"category,omitempty" bson:"category,omitempty"`
	Published *bool   `json:"published,omitempty" bson:"published,omitempty"`
}

// UpdateSchema is a merge patch: absent fields are left untouched in store.
type UpdateSchema struct {
	Title     *string `json:"title,omitempty" bson:"title,omitempty"`
	Summary   *string `json:"summary,omitempty" bson:"summary,omitempty"`
	Content   *string `json:"content,omitempty" bson:"content,omitempty"`
	Category  *string `json:"category,omitempty" bson:"category,omitempty"`
	Published *bool   `json:"published,omitempty" bson:"published,omitempty"`
}
