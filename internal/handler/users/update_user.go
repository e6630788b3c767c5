// File: internal/handler/users/update_user.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/model"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateUserRequest 定義編輯使用者的請求格式
// 密碼不可經由此操作更動
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name       string `json:"name" validate:"required,min=2" example:"Alice"`
	Email      string `json:"email" validate:"required,email" example:"alice@example.com"`
	IsBusiness bool   `json:"isBusiness" example:"true"`
}

// UpdateUserHandler 編輯使用者資料（僅本人）
// @Summary     Update user
// @Description 更新姓名、Email 與商業狀態；Email 不得與其他使用者重複
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path string            true "使用者 ID (hex)"
// @Param       body body UpdateUserRequest true "使用者資料"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		var req UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// 檢查 Email 是否被其他使用者占用，排除本人
		taken, err := store.UserEmailTaken(c.Request().Context(), db, req.Email, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to check email"})
		}
		if taken {
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: "there is already a user with this email"})
		}

		updated, err := store.UpdateUser(c.Request().Context(), db, &model.User{
			ID:         userID,
			Name:       req.Name,
			Email:      req.Email,
			IsBusiness: req.IsBusiness,
		})
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(updated))
	}
}
