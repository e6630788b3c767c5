package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

/* ---------- 假實作 ---------- */

type stubMongoClient struct {
	db            *mongo.Database
	pingErr       error
	disconnectErr error
	disconnected  bool
}

func (s *stubMongoClient) Database(name string, opts ...*options.DatabaseOptions) *mongo.Database {
	return s.db
}

func (s *stubMongoClient) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return s.pingErr
}

func (s *stubMongoClient) Disconnect(ctx context.Context) error {
	s.disconnected = true
	return s.disconnectErr
}

func restoreMongoGlobals(t *testing.T) {
	origConnect := mongoConnect
	origEnsure := ensureIndexesFn
	t.Cleanup(func() {
		mongoConnect = origConnect
		ensureIndexesFn = origEnsure
	})
}

/* ---------- 完整測試 ---------- */

func TestNewMongoDBInvalidURI(t *testing.T) {
	_, err := NewMongoDB(context.Background(), "://bad")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid MongoDB URI")
}

func TestNewMongoDBMissingDatabaseName(t *testing.T) {
	for _, uri := range []string{
		"mongodb://localhost:27017",
		"mongodb://localhost:27017/",
	} {
		_, err := NewMongoDB(context.Background(), uri)
		require.Error(t, err)
		require.Contains(t, err.Error(), "missing a database name")
	}
}

func TestNewMongoDBConnectError(t *testing.T) {
	restoreMongoGlobals(t)

	mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (mongoClient, error) {
		return nil, errors.New("connect failed")
	}

	_, err := NewMongoDB(context.Background(), "mongodb://localhost:27017/card-space")
	require.Error(t, err)
	require.Contains(t, err.Error(), "connect failed")
}

func TestNewMongoDBPingError(t *testing.T) {
	restoreMongoGlobals(t)

	mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (mongoClient, error) {
		return &stubMongoClient{pingErr: errors.New("ping failed")}, nil
	}

	_, err := NewMongoDB(context.Background(), "mongodb://localhost:27017/card-space")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ping failed")
}

func TestNewMongoDBEnsureIndexesError(t *testing.T) {
	restoreMongoGlobals(t)

	mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (mongoClient, error) {
		return &stubMongoClient{}, nil
	}
	ensureIndexesFn = func(ctx context.Context, db *mongo.Database) error {
		return errors.New("index failed")
	}

	_, err := NewMongoDB(context.Background(), "mongodb://localhost:27017/card-space")
	require.Error(t, err)
	require.Contains(t, err.Error(), "index failed")
}

func TestNewMongoDBSuccess(t *testing.T) {
	restoreMongoGlobals(t)

	stub := &stubMongoClient{}
	ensured := false
	mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (mongoClient, error) {
		return stub, nil
	}
	ensureIndexesFn = func(ctx context.Context, db *mongo.Database) error {
		ensured = true
		return nil
	}

	db, err := NewMongoDB(context.Background(), "mongodb://localhost:27017/card-space")
	require.NoError(t, err)
	require.True(t, ensured)
	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.Close(context.Background()))
	require.True(t, stub.disconnected)
}

func TestMongoDBCollections(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	db := &mongoDB{client: client, name: "card-space"}

	users, ok := db.Users().(*mongo.Collection)
	require.True(t, ok)
	require.Equal(t, "users", users.Name())

	cards, ok := db.Cards().(*mongo.Collection)
	require.True(t, ok)
	require.Equal(t, "cards", cards.Name())
}
