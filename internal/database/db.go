// File: internal/database/db.go
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection 定義 store 層需要的文件集合操作
// 由 *mongo.Collection 直接實作，測試時以 FakeCollection 替換
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// DB 封裝文件資料庫，提供各集合的操作入口
type DB interface {
	Users() Collection
	Cards() Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type FakeCollection struct {
	FindOneFn          func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	FindFn             func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOneFn        func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOneAndUpdateFn func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	FindOneAndDeleteFn func(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult
	CountDocumentsFn   func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

func (f *FakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	if f.FindOneFn != nil {
		return f.FindOneFn(ctx, filter, opts...)
	}
	panic("unexpected FindOne")
}

func (f *FakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.FindFn != nil {
		return f.FindFn(ctx, filter, opts...)
	}
	panic("unexpected Find")
}

func (f *FakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.InsertOneFn != nil {
		return f.InsertOneFn(ctx, document, opts...)
	}
	panic("unexpected InsertOne")
}

func (f *FakeCollection) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	if f.FindOneAndUpdateFn != nil {
		return f.FindOneAndUpdateFn(ctx, filter, update, opts...)
	}
	panic("unexpected FindOneAndUpdate")
}

func (f *FakeCollection) FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult {
	if f.FindOneAndDeleteFn != nil {
		return f.FindOneAndDeleteFn(ctx, filter, opts...)
	}
	panic("unexpected FindOneAndDelete")
}

func (f *FakeCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	if f.CountDocumentsFn != nil {
		return f.CountDocumentsFn(ctx, filter, opts...)
	}
	panic("unexpected CountDocuments")
}

type FakeDB struct {
	UsersFn func() Collection
	CardsFn func() Collection
	PingFn  func(ctx context.Context) error
	CloseFn func(ctx context.Context) error
}

func (f *FakeDB) Users() Collection {
	if f.UsersFn != nil {
		return f.UsersFn()
	}
	panic("unexpected Users")
}

func (f *FakeDB) Cards() Collection {
	if f.CardsFn != nil {
		return f.CardsFn()
	}
	panic("unexpected Cards")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close(ctx context.Context) error {
	if f.CloseFn != nil {
		return f.CloseFn(ctx)
	}
	return nil
}
