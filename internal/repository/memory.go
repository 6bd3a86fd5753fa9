package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store with the same observable behavior as Mongo:
// unique-key enforcement, hex identifier validation, insertion-order
// pagination and merge-patch updates. It backs unit tests and serves as a
// fallback when no MongoDB is configured.
type Memory[C, U any, M Model[E], E any] struct {
	keyField string
	defaults Defaults[C]

	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]bson.D
}

func NewMemory[C, U any, M Model[E], E any](keyField string, defaults Defaults[C]) *Memory[C, U, M, E] {
	return &Memory[C, U, M, E]{
		keyField: keyField,
		defaults: defaults,
		docs:     make(map[primitive.ObjectID]bson.D),
	}
}

// entity decodes a stored document into the model type and projects it.
func (r *Memory[C, U, M, E]) entity(doc bson.D) (E, error) {
	var zero E
	raw, err := bson.Marshal(doc)
	if err != nil {
		return zero, &QueryError{Err: err}
	}
	var m M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return zero, &QueryError{Err: err}
	}
	return m.Entity(), nil
}

func (r *Memory[C, U, M, E]) List(ctx context.Context, limit, page int64) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := (page - 1) * limit
	out := []E{}
	if start >= int64(len(r.order)) {
		return out, nil
	}
	end := start + limit
	if end > int64(len(r.order)) {
		end = int64(len(r.order))
	}
	for _, oid := range r.order[start:end] {
		e, err := r.entity(r.docs[oid])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Memory[C, U, M, E]) Create(ctx context.Context, schema *C) (E, error) {
	var zero E

	doc, err := newDocument(schema, r.defaults, time.Now().UTC())
	if err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key, _ := lookupField(doc, r.keyField)
	for _, oid := range r.order {
		if v, ok := lookupField(r.docs[oid], r.keyField); ok && v == key {
			return zero, &DuplicateKeyError{Key: r.keyField}
		}
	}

	oid := primitive.NewObjectID()
	stored := append(bson.D{{Key: "_id", Value: oid}}, doc...)
	r.docs[oid] = stored
	r.order = append(r.order, oid)

	return r.entity(stored)
}

func (r *Memory[C, U, M, E]) Get(ctx context.Context, id string) (E, error) {
	var zero E

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, &InvalidIDError{ID: id}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[oid]
	if !ok {
		return zero, &NotFoundError{ID: id}
	}
	return r.entity(doc)
}

func (r *Memory[C, U, M, E]) Update(ctx context.Context, id string, schema *U) (E, error) {
	var zero E

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, &InvalidIDError{ID: id}
	}

	patch, err := patchDocument(schema, time.Now().UTC())
	if err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[oid]
	if !ok {
		return zero, &NotFoundError{ID: id}
	}
	updated := mergeDoc(append(bson.D{}, doc...), patch)
	r.docs[oid] = updated
	return r.entity(updated)
}

func (r *Memory[C, U, M, E]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &InvalidIDError{ID: id}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[oid]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.docs, oid)
	for i, v := range r.order {
		if v == oid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
