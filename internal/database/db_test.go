package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestFakeCollection(t *testing.T) {
	col := &FakeCollection{}
	require.Panics(t, func() { col.FindOne(context.Background(), bson.M{}) })
	require.Panics(t, func() { col.Find(context.Background(), bson.M{}) })
	require.Panics(t, func() { col.InsertOne(context.Background(), bson.M{}) })
	require.Panics(t, func() { col.FindOneAndUpdate(context.Background(), bson.M{}, bson.M{}) })
	require.Panics(t, func() { col.FindOneAndDelete(context.Background(), bson.M{}) })
	require.Panics(t, func() { col.CountDocuments(context.Background(), bson.M{}) })

	findOneCalled := false
	findCalled := false
	insertCalled := false
	updateCalled := false
	deleteCalled := false
	countCalled := false

	col.FindOneFn = func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
		findOneCalled = true
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	col.FindFn = func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
		findCalled = true
		return nil, errors.New("e")
	}
	col.InsertOneFn = func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
		insertCalled = true
		return &mongo.InsertOneResult{}, nil
	}
	col.FindOneAndUpdateFn = func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
		updateCalled = true
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	col.FindOneAndDeleteFn = func(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult {
		deleteCalled = true
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	col.CountDocumentsFn = func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
		countCalled = true
		return 0, nil
	}

	_ = col.FindOne(context.Background(), bson.M{})
	_, err := col.Find(context.Background(), bson.M{})
	require.Error(t, err)
	_, err = col.InsertOne(context.Background(), bson.M{})
	require.NoError(t, err)
	_ = col.FindOneAndUpdate(context.Background(), bson.M{}, bson.M{})
	_ = col.FindOneAndDelete(context.Background(), bson.M{})
	_, err = col.CountDocuments(context.Background(), bson.M{})
	require.NoError(t, err)

	require.True(t, findOneCalled)
	require.True(t, findCalled)
	require.True(t, insertCalled)
	require.True(t, updateCalled)
	require.True(t, deleteCalled)
	require.True(t, countCalled)
}

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Users() })
	require.Panics(t, func() { db.Cards() })
	require.Panics(t, func() { db.Ping(context.Background()) })
	require.NoError(t, db.Close(context.Background()))

	usersCalled := false
	cardsCalled := false
	pingCalled := false
	closeCalled := false

	col := &FakeCollection{}
	db.UsersFn = func() Collection { usersCalled = true; return col }
	db.CardsFn = func() Collection { cardsCalled = true; return col }
	db.PingFn = func(ctx context.Context) error { pingCalled = true; return nil }
	db.CloseFn = func(ctx context.Context) error { closeCalled = true; return errors.New("e") }

	require.Equal(t, Collection(col), db.Users())
	require.Equal(t, Collection(col), db.Cards())
	require.NoError(t, db.Ping(context.Background()))
	require.Error(t, db.Close(context.Background()))
	require.True(t, usersCalled)
	require.True(t, cardsCalled)
	require.True(t, pingCalled)
	require.True(t, closeCalled)
}
