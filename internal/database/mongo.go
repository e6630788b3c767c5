// File: internal/database/mongo.go
package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection = "users"
	cardsCollection = "cards"

	connectTimeout = 10 * time.Second
)

// mongoClient 定義了 NewMongoDB 內部使用的必要方法，便於測試時替換。
type mongoClient interface {
	Database(name string, opts ...*options.DatabaseOptions) *mongo.Database
	Ping(ctx context.Context, rp *readpref.ReadPref) error
	Disconnect(ctx context.Context) error
}

// mongoConnect 用來建立 mongo client，測試可覆寫此變數。
var mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (mongoClient, error) {
	return mongo.Connect(ctx, opts...)
}

// ensureIndexesFn 測試可覆寫此變數以略過索引建立。
var ensureIndexesFn = ensureIndexes

type mongoDB struct {
	client mongoClient
	name   string
}

func (m *mongoDB) Users() Collection { return m.client.Database(m.name).Collection(usersCollection) }

func (m *mongoDB) Cards() Collection { return m.client.Database(m.name).Collection(cardsCollection) }

func (m *mongoDB) Ping(ctx context.Context) error { return m.client.Ping(ctx, nil) }

func (m *mongoDB) Close(ctx context.Context) error { return m.client.Disconnect(ctx) }

// NewMongoDB 連線到 MongoDB，驗證連線並確保唯一索引存在
// uri 必須帶資料庫名稱，例如 mongodb://localhost:27017/card-space
func NewMongoDB(ctx context.Context, uri string) (DB, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return nil, fmt.Errorf("MongoDB URI is missing a database name")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongoConnect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	if err := ensureIndexesFn(ctx, client.Database(name)); err != nil {
		return nil, err
	}

	return &mongoDB{client: client, name: name}, nil
}

// ensureIndexes 建立 email 與 bizNumber 的唯一索引
// 作為 check-then-use 競態的儲存層防線
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure users.email index: %w", err)
	}

	_, err = db.Collection(cardsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bizNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure cards.bizNumber index: %w", err)
	}
	return nil
}
