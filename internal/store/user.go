package store

import (
	"context"
	"fmt"
	"time"

	"card-space/internal/database"
	"card-space/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetUserByID(ctx context.Context, db database.DB, userID primitive.ObjectID) (*model.User, error) {
	u := &model.User{}
	if err := db.Users().FindOne(ctx, bson.M{"_id": userID}).Decode(u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u := &model.User{}
	if err := db.Users().FindOne(ctx, bson.M{"email": email}).Decode(u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// UserEmailTaken 回報 email 是否已被其他使用者使用
// exclude 為零值時檢查所有使用者
func UserEmailTaken(ctx context.Context, db database.DB, email string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"email": email}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	n, err := db.Users().CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("UserEmailTaken: %w", err)
	}
	return n > 0, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	cur, err := db.Users().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.CreatedAt = time.Now().UTC()
	if _, err := db.Users().InsertOne(ctx, u); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser 更新姓名、Email 與商業狀態，回傳更新後的使用者
// 密碼不在此處更動
func UpdateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	after := options.After
	res := db.Users().FindOneAndUpdate(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{
			"name":       u.Name,
			"email":      u.Email,
			"isBusiness": u.IsBusiness,
		}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)
	updated := &model.User{}
	if err := res.Decode(updated); err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return updated, nil
}

func SetUserBusiness(ctx context.Context, db database.DB, userID primitive.ObjectID, isBusiness bool) (*model.User, error) {
	after := options.After
	res := db.Users().FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"isBusiness": isBusiness}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)
	updated := &model.User{}
	if err := res.Decode(updated); err != nil {
		return nil, fmt.Errorf("SetUserBusiness: %w", err)
	}
	return updated, nil
}

func DeleteUser(ctx context.Context, db database.DB, userID primitive.ObjectID) (*model.User, error) {
	deleted := &model.User{}
	if err := db.Users().FindOneAndDelete(ctx, bson.M{"_id": userID}).Decode(deleted); err != nil {
		return nil, fmt.Errorf("DeleteUser: %w", err)
	}
	return deleted, nil
}
