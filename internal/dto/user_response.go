// File: internal/dto/user_response.go
package dto

import (
	"time"

	"card-space/internal/model"
)

// UserResponse 定義回傳的使用者資訊，永不包含密碼哈希
// swagger:model dto.UserResponse
type UserResponse struct {
	// 使用者 ID (hex)
	ID string `json:"id" example:"662a1b2c3d4e5f6a7b8c9d0e"`

	// 使用者姓名
	Name string `json:"name" example:"Alice"`

	// 使用者 Email
	Email string `json:"email" example:"alice@example.com"`

	// 是否為管理員
	IsAdmin bool `json:"isAdmin" example:"false"`

	// 是否為商業帳號
	IsBusiness bool `json:"isBusiness" example:"true"`

	// 建立時間 (RFC3339 格式)
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 將使用者模型轉為回應格式
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		IsAdmin:    u.IsAdmin,
		IsBusiness: u.IsBusiness,
		CreatedAt:  u.CreatedAt,
	}
}

// NewUserResponses 轉換使用者清單
func NewUserResponses(us []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for i := range us {
		out = append(out, NewUserResponse(&us[i]))
	}
	return out
}
