// File: internal/handler/users/register.go
package users

import (
	"net/http"
	"strings"

	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/model"
	"card-space/internal/service"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterRequest 定義註冊新使用者的請求格式
// swagger:model RegisterRequest
type RegisterRequest struct {
	// 使用者姓名
	// required: true
	Name string `json:"name" validate:"required,min=2" example:"Alice"`

	// 使用者 Email (會自動轉為小寫)
	// required: true
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`

	// 使用者密碼
	// required: true
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`

	// 是否為商業帳號
	IsBusiness bool `json:"isBusiness" example:"true"`
}

// RegisterHandler 建立新使用者
// @Summary     Register a new user
// @Description 接收使用者資料並建立新帳號 (Email 會自動轉小寫，密碼以 bcrypt 儲存)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body RegisterRequest true "使用者資料"
// @Success     201 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /users [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// Email 轉為小寫以確保唯一性檢查的一致性
		req.Email = strings.ToLower(req.Email)

		taken, err := store.UserEmailTaken(c.Request().Context(), db, req.Email, primitive.NilObjectID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to check email"})
		}
		if taken {
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: "user already registered"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			IsBusiness:   req.IsBusiness,
		}

		created, err := store.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, dto.NewUserResponse(created))
	}
}
