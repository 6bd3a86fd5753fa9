package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newNoteMongo(mt *mtest.T) *Mongo[noteCreate, noteUpdate, noteModel, note] {
	return NewMongo[noteCreate, noteUpdate, noteModel, note](mt.Coll, "title", noteDefaults)
}

func noteDoc(oid primitive.ObjectID, title, body string, pinned bool, ts time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "title", Value: title},
		{Key: "body", Value: body},
		{Key: "pinned", Value: pinned},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(ts)},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(ts)},
	}
}

func mockNS(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the read-back entity", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		ts := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(), // createIndexes
			mtest.CreateSuccessResponse(), // insert
			mtest.CreateCursorResponse(0, mockNS(mt), mtest.FirstBatch, noteDoc(oid, "t", "b", false, ts)),
		)

		n, err := newNoteMongo(mt).Create(context.Background(), &noteCreate{Title: "t", Body: "b"})
		require.NoError(t, err)
		require.Equal(t, oid.Hex(), n.ID)
		require.Equal(t, "t", n.Title)
		require.True(t, n.CreatedAt.Equal(n.UpdatedAt))
	})

	mt.Run("unique index violation maps to DuplicateKeyError", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		_, err := newNoteMongo(mt).Create(context.Background(), &noteCreate{Title: "t", Body: "b"})
		var dup *DuplicateKeyError
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "title", dup.Key)
	})

	mt.Run("empty read-back after insert is the NotFound anomaly", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, mockNS(mt), mtest.FirstBatch),
		)

		_, err := newNoteMongo(mt).Create(context.Background(), &noteCreate{Title: "t", Body: "b"})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	mt.Run("index creation failure aborts before the insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    8000,
			Name:    "AtlasError",
			Message: "createIndexes rejected",
		}))

		_, err := newNoteMongo(mt).Create(context.Background(), &noteCreate{Title: "t", Body: "b"})
		var qe *QueryError
		require.ErrorAs(t, err, &qe)

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		require.Equal(t, "createIndexes", evt.CommandName)
		require.Nil(t, mt.GetStartedEvent(), "no further command may follow a failed createIndexes")
	})
}

func TestMongoGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		ts := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockNS(mt), mtest.FirstBatch, noteDoc(oid, "t", "b", true, ts)))

		n, err := newNoteMongo(mt).Get(context.Background(), oid.Hex())
		require.NoError(t, err)
		require.Equal(t, oid.Hex(), n.ID)
		require.True(t, n.Pinned)
	})

	mt.Run("absent id is NotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockNS(mt), mtest.FirstBatch))

		_, err := newNoteMongo(mt).Get(context.Background(), primitive.NewObjectID().Hex())
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		_, err := newNoteMongo(mt).Get(context.Background(), "nope")
		var invalid *InvalidIDError
		require.ErrorAs(t, err, &invalid)
		require.Nil(t, mt.GetStartedEvent())
	})
}

func TestMongoList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("passes limit and offset through to find", func(mt *mtest.T) {
		ts := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockNS(mt), mtest.FirstBatch,
			noteDoc(primitive.NewObjectID(), "n3", "b", false, ts),
			noteDoc(primitive.NewObjectID(), "n4", "b", false, ts),
		))

		list, err := newNoteMongo(mt).List(context.Background(), 2, 2)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "n3", list[0].Title)

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		require.Equal(t, "find", evt.CommandName)
		limit, ok := evt.Command.Lookup("limit").AsInt64OK()
		require.True(t, ok)
		require.Equal(t, int64(2), limit)
		skip, ok := evt.Command.Lookup("skip").AsInt64OK()
		require.True(t, ok)
		require.Equal(t, int64(2), skip)
	})
}

func TestMongoUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sends a merge patch and returns the post-update document", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		ts := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: noteDoc(oid, "t", "new", false, ts)}))

		n, err := newNoteMongo(mt).Update(context.Background(), oid.Hex(), &noteUpdate{Body: strPtr("new")})
		require.NoError(t, err)
		require.Equal(t, "new", n.Body)

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		require.Equal(t, "findAndModify", evt.CommandName)
		set, err := evt.Command.LookupErr("update", "$set")
		require.NoError(t, err)
		setDoc := set.Document()
		_, err = setDoc.LookupErr("body")
		require.NoError(t, err)
		_, err = setDoc.LookupErr("updatedAt")
		require.NoError(t, err, "updatedAt must be refreshed on every update")
		_, err = setDoc.LookupErr("title")
		require.Error(t, err, "absent fields must stay out of the patch")
	})

	mt.Run("absent id is NotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := newNoteMongo(mt).Update(context.Background(), primitive.NewObjectID().Hex(), &noteUpdate{Body: strPtr("x")})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		_, err := newNoteMongo(mt).Update(context.Background(), "bad", &noteUpdate{})
		var invalid *InvalidIDError
		require.ErrorAs(t, err, &invalid)
		require.Nil(t, mt.GetStartedEvent())
	})
}

func TestMongoDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(t, newNoteMongo(mt).Delete(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("zero matches is NotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := newNoteMongo(mt).Delete(context.Background(), primitive.NewObjectID().Hex())
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	mt.Run("command failure wraps as QueryError", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "server is shutting down",
		}))

		err := newNoteMongo(mt).Delete(context.Background(), primitive.NewObjectID().Hex())
		var qe *QueryError
		require.ErrorAs(t, err, &qe)
	})
}
