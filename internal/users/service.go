package users

import (
	"context"

	"github.com/sogcms/content-api/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

// KeyField is the field carrying the user uniqueness constraint.
const KeyField = "name"

// Store is the persistence contract for users.
type Store = repository.Store[CreateSchema, UpdateSchema, User]

// NewMongoStore wires a user store onto the given collection.
func NewMongoStore(col *mongo.Collection) Store {
	return repository.NewMongo[CreateSchema, UpdateSchema, Model, User](col, KeyField, nil)
}

// NewMemoryStore returns an in-memory user store for tests and for running
// without a MongoDB.
func NewMemoryStore() Store {
	return repository.NewMemory[CreateSchema, UpdateSchema, Model, User](KeyField, nil)
}

// Service encapsulates user operations for the handler layer.
type Service struct {
	store Store
}

func NewService(s Store) *Service {
	return &Service{store: s}
}

func (s *Service) List(ctx context.Context, limit, page int64) ([]User, error) {
	return s.store.List(ctx, limit, page)
}

func (s *Service) Create(ctx context.Context, schema *CreateSchema) (User, error) {
	return s.store.Create(ctx, schema)
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, schema *UpdateSchema) (User, error) {
	return s.store.Update(ctx, id, schema)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
