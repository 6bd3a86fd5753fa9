// Package repository implements the generic document-repository layer shared
// by all entity kinds. One instance owns one MongoDB collection and maps
// between caller-facing schema structs and stored documents: it injects the
// server timestamps, enforces the entity's unique key, paginates and
// translates driver failures into the typed errors in errors.go.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Model is implemented by stored document structs. Entity projects the
// stored form into the public representation (ObjectID rendered as hex,
// concrete field values).
type Model[E any] interface {
	Entity() E
}

// Store is the persistence contract for one entity kind, shared by the Mongo
// and in-memory implementations. C is the create schema, U the partial
// update schema, E the public entity.
type Store[C, U, E any] interface {
	List(ctx context.Context, limit, page int64) ([]E, error)
	Create(ctx context.Context, schema *C) (E, error)
	Get(ctx context.Context, id string) (E, error)
	Update(ctx context.Context, id string, schema *U) (E, error)
	Delete(ctx context.Context, id string) error
}

// Defaults produces the concrete default fields written alongside a create
// schema (e.g. published=false when the caller omitted it). Fields present
// in the schema itself override defaults with the same name.
type Defaults[C any] func(schema *C) bson.D

// encodeDoc serializes a schema struct into an ordered document.
func encodeDoc(v interface{}) (bson.D, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return doc, nil
}

// mergeDoc overlays src onto dst: matching keys are replaced in place, new
// keys are appended. dst's field order is preserved.
func mergeDoc(dst, src bson.D) bson.D {
	for _, e := range src {
		replaced := false
		for i := range dst {
			if dst[i].Key == e.Key {
				dst[i].Value = e.Value
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, e)
		}
	}
	return dst
}

// lookupField returns the value of key in doc, if present.
func lookupField(doc bson.D, key string) (interface{}, bool) {
	for _, e := range doc {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// newDocument builds the stored form of a create schema: server timestamps
// (createdAt == updatedAt, same instant), then entity defaults, then the
// schema fields. Later sources win on duplicate names.
func newDocument[C any](schema *C, defaults Defaults[C], now time.Time) (bson.D, error) {
	doc := bson.D{
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
	if defaults != nil {
		doc = mergeDoc(doc, defaults(schema))
	}
	fields, err := encodeDoc(schema)
	if err != nil {
		return nil, err
	}
	return mergeDoc(doc, fields), nil
}

// patchDocument builds the field-level merge body for a partial update.
// updatedAt is refreshed automatically; a patch naming updatedAt explicitly
// wins over the automatic value.
func patchDocument[U any](schema *U, now time.Time) (bson.D, error) {
	fields, err := encodeDoc(schema)
	if err != nil {
		return nil, err
	}
	return mergeDoc(bson.D{{Key: "updatedAt", Value: now}}, fields), nil
}
