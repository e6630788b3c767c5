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

func ListCards(ctx context.Context, db database.DB) ([]model.Card, error) {
	cur, err := db.Cards().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListCards: %w", err)
	}
	var cards []model.Card
	if err := cur.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("ListCards: %w", err)
	}
	return cards, nil
}

func ListCardsByOwner(ctx context.Context, db database.DB, ownerID primitive.ObjectID) ([]model.Card, error) {
	cur, err := db.Cards().Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("ListCardsByOwner: %w", err)
	}
	var cards []model.Card
	if err := cur.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("ListCardsByOwner: %w", err)
	}
	return cards, nil
}

func GetCardByID(ctx context.Context, db database.DB, cardID primitive.ObjectID) (*model.Card, error) {
	card := &model.Card{}
	if err := db.Cards().FindOne(ctx, bson.M{"_id": cardID}).Decode(card); err != nil {
		return nil, fmt.Errorf("GetCardByID: %w", err)
	}
	return card, nil
}

// CardBizNumberTaken 回報商業編號是否已被任一名片使用
func CardBizNumberTaken(ctx context.Context, db database.DB, bizNumber int) (bool, error) {
	n, err := db.Cards().CountDocuments(ctx, bson.M{"bizNumber": bizNumber})
	if err != nil {
		return false, fmt.Errorf("CardBizNumberTaken: %w", err)
	}
	return n > 0, nil
}

func CreateCard(ctx context.Context, db database.DB, card *model.Card) (*model.Card, error) {
	if card.ID.IsZero() {
		card.ID = primitive.NewObjectID()
	}
	if card.Likes == nil {
		card.Likes = []model.Like{}
	}
	card.CreatedAt = time.Now().UTC()
	if _, err := db.Cards().InsertOne(ctx, card); err != nil {
		return nil, fmt.Errorf("CreateCard: %w", err)
	}
	return card, nil
}

// UpdateCard 更新名片內容欄位，擁有者、bizNumber 與 likes 不在此處更動
func UpdateCard(ctx context.Context, db database.DB, card *model.Card) (*model.Card, error) {
	after := options.After
	res := db.Cards().FindOneAndUpdate(ctx,
		bson.M{"_id": card.ID},
		bson.M{"$set": bson.M{
			"title":       card.Title,
			"description": card.Description,
			"address":     card.Address,
			"phone":       card.Phone,
			"image":       card.Image,
		}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)
	updated := &model.Card{}
	if err := res.Decode(updated); err != nil {
		return nil, fmt.Errorf("UpdateCard: %w", err)
	}
	return updated, nil
}

// UserLikedCard 回報使用者是否已對該名片按讚
func UserLikedCard(ctx context.Context, db database.DB, cardID, userID primitive.ObjectID) (bool, error) {
	n, err := db.Cards().CountDocuments(ctx, bson.M{
		"_id":           cardID,
		"likes.user_id": userID,
	})
	if err != nil {
		return false, fmt.Errorf("UserLikedCard: %w", err)
	}
	return n > 0, nil
}

// AddCardLike 將使用者加入 likes，回傳更新後的名片
// 與 UserLikedCard 之間為 read-then-write，重複按讚競態為已知邊界
func AddCardLike(ctx context.Context, db database.DB, cardID, userID primitive.ObjectID) (*model.Card, error) {
	after := options.After
	res := db.Cards().FindOneAndUpdate(ctx,
		bson.M{"_id": cardID},
		bson.M{"$push": bson.M{"likes": model.Like{UserID: userID}}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)
	updated := &model.Card{}
	if err := res.Decode(updated); err != nil {
		return nil, fmt.Errorf("AddCardLike: %w", err)
	}
	return updated, nil
}

func DeleteCard(ctx context.Context, db database.DB, cardID primitive.ObjectID) (*model.Card, error) {
	deleted := &model.Card{}
	if err := db.Cards().FindOneAndDelete(ctx, bson.M{"_id": cardID}).Decode(deleted); err != nil {
		return nil, fmt.Errorf("DeleteCard: %w", err)
	}
	return deleted, nil
}
