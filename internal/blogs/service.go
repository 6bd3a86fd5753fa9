package blogs

import (
	"context"

	"github.com/sogcms/content-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// KeyField is the field carrying the blog uniqueness constraint.
const KeyField = "title"

// Store is the persistence contract for blog posts.
type Store = repository.Store[CreateSchema, UpdateSchema, Blog]

// defaultFields resolves the concrete values written for the optional
// create-schema members. Posts are unpublished and uncategorized unless the
// caller says otherwise.
func defaultFields(schema *CreateSchema) bson.D {
	published := schema.Published != nil && *schema.Published
	category := ""
	if schema.Category != nil {
		category = *schema.Category
	}
	return bson.D{
		{Key: "category", Value: category},
		{Key: "published", Value: published},
	}
}

// NewMongoStore wires a blog store onto the given collection.
func NewMongoStore(col *mongo.Collection) Store {
	return repository.NewMongo[CreateSchema, UpdateSchema, Model, Blog](col, KeyField, defaultFields)
}

// NewMemoryStore returns an in-memory blog store for tests and for running
// without a MongoDB.
func NewMemoryStore() Store {
	return repository.NewMemory[CreateSchema, UpdateSchema, Model, Blog](KeyField, defaultFields)
}

// Service encapsulates blog operations for the handler layer.
type Service struct {
	store Store
}

func NewService(s Store) *Service {
	return &Service{store: s}
}

func (s *Service) List(ctx context.Context, limit, page int64) ([]Blog, error) {
	return s.store.List(ctx, limit, page)
}

func (s *Service) Create(ctx context.Context, schema *CreateSchema) (Blog, error) {
	return s.store.Create(ctx, schema)
}

func (s *Service) Get(ctx context.Context, id string) (Blog, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, schema *UpdateSchema) (Blog, error) {
	return s.store.Update(ctx, id, schema)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
