package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB-backed Store for one entity kind. It holds no mutable
// state after construction and is safe to share across concurrent requests;
// ordering and atomicity are the collection's.
type Mongo[C, U any, M Model[E], E any] struct {
	col      *mongo.Collection
	keyField string
	defaults Defaults[C]
}

// NewMongo wires a Store onto col. keyField names the field carrying the
// entity's uniqueness constraint; defaults may be nil when the entity has no
// defaulted fields.
func NewMongo[C, U any, M Model[E], E any](col *mongo.Collection, keyField string, defaults Defaults[C]) *Mongo[C, U, M, E] {
	return &Mongo[C, U, M, E]{col: col, keyField: keyField, defaults: defaults}
}

// List returns one page of entities in the collection's natural order.
// limit is the page size, page is 1-indexed.
func (r *Mongo[C, U, M, E]) List(ctx context.Context, limit, page int64) ([]E, error) {
	opts := options.Find().SetLimit(limit).SetSkip((page - 1) * limit)
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer cur.Close(ctx)

	out := []E{}
	for cur.Next(ctx) {
		var m M
		if err := cur.Decode(&m); err != nil {
			return nil, &QueryError{Err: err}
		}
		out = append(out, m.Entity())
	}
	if err := cur.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}
	return out, nil
}

// Create inserts a new document built from schema plus server timestamps and
// entity defaults, then reads it back so store-computed fields (generated
// _id, timestamps) are returned authoritatively.
func (r *Mongo[C, U, M, E]) Create(ctx context.Context, schema *C) (E, error) {
	var zero E

	doc, err := newDocument(schema, r.defaults, time.Now().UTC())
	if err != nil {
		return zero, err
	}

	// ensure the unique index before inserting; a cheap no-op once it exists
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: r.keyField, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.col.Indexes().CreateOne(ctx, idx); err != nil {
		return zero, &QueryError{Err: err}
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return zero, &DuplicateKeyError{Key: r.keyField, Err: err}
		}
		return zero, &QueryError{Err: err}
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return zero, &QueryError{Err: errors.New("insert returned a non-ObjectID _id")}
	}

	var m M
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// read-back after a successful insert found nothing; this is a
			// consistency anomaly, not a normal miss
			return zero, &NotFoundError{ID: oid.Hex()}
		}
		return zero, &QueryError{Err: err}
	}
	return m.Entity(), nil
}

// Get performs a point lookup by hex identifier.
func (r *Mongo[C, U, M, E]) Get(ctx context.Context, id string) (E, error) {
	var zero E

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, &InvalidIDError{ID: id}
	}

	var m M
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, &NotFoundError{ID: id}
		}
		return zero, &QueryError{Err: err}
	}
	return m.Entity(), nil
}

// Update applies the present fields of schema as a field-level merge (absent
// fields are left untouched) and returns the post-update document.
func (r *Mongo[C, U, M, E]) Update(ctx context.Context, id string, schema *U) (E, error) {
	var zero E

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, &InvalidIDError{ID: id}
	}

	patch, err := patchDocument(schema, time.Now().UTC())
	if err != nil {
		return zero, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m M
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patch}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, &NotFoundError{ID: id}
		}
		return zero, &QueryError{Err: err}
	}
	return m.Entity(), nil
}

// Delete removes the single document with the given hex identifier.
func (r *Mongo[C, U, M, E]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &InvalidIDError{ID: id}
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return &QueryError{Err: err}
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}
