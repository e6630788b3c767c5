// File: internal/dto/card_response.go
package dto

import (
	"time"

	"card-space/internal/model"
)

// CardResponse 定義回傳的名片資訊
// swagger:model dto.CardResponse
type CardResponse struct {
	// 名片 ID (hex)
	ID string `json:"id" example:"662a1b2c3d4e5f6a7b8c9d0e"`

	// 擁有者的使用者 ID (hex)
	UserID string `json:"user_id" example:"662a1b2c3d4e5f6a7b8c9d0f"`

	// 公開的商業編號
	BizNumber int `json:"bizNumber" example:"734155"`

	Title       string `json:"title" example:"Cohen Plumbing"`
	Description string `json:"description" example:"24/7 emergency plumbing"`
	Address     string `json:"address" example:"12 Herzl St, Tel Aviv"`
	Phone       string `json:"phone" example:"050-1234567"`
	Image       string `json:"image,omitempty" example:"https://example.com/card.png"`

	// 按讚的使用者 ID 清單 (hex)
	Likes []string `json:"likes"`

	// 建立時間 (RFC3339 格式)
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// NewCardResponse 將名片模型轉為回應格式
func NewCardResponse(card *model.Card) CardResponse {
	likes := make([]string, 0, len(card.Likes))
	for _, l := range card.Likes {
		likes = append(likes, l.UserID.Hex())
	}
	return CardResponse{
		ID:          card.ID.Hex(),
		UserID:      card.UserID.Hex(),
		BizNumber:   card.BizNumber,
		Title:       card.Title,
		Description: card.Description,
		Address:     card.Address,
		Phone:       card.Phone,
		Image:       card.Image,
		Likes:       likes,
		CreatedAt:   card.CreatedAt,
	}
}

// NewCardResponses 轉換名片清單
func NewCardResponses(cards []model.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, NewCardResponse(&cards[i]))
	}
	return out
}
