// File: internal/handler/users/set_business.go
package users

import (
	"errors"
	"net/http"

	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetBusinessRequest 定義切換商業狀態的請求格式
// swagger:model SetBusinessRequest
type SetBusinessRequest struct {
	// 指標型別以區分 false 與欄位缺漏
	IsBusiness *bool `json:"isBusiness" validate:"required" example:"true"`
}

// SetBusinessHandler 切換使用者的 isBusiness 旗標（僅本人）
// @Summary     Toggle business status
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path string             true "使用者 ID (hex)"
// @Param       body body SetBusinessRequest true "商業狀態"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [patch]
func SetBusinessHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		var req SetBusinessRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: `"isBusiness" must exist and be of type "boolean"`})
		}

		updated, err := store.SetUserBusiness(c.Request().Context(), db, userID, *req.IsBusiness)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(updated))
	}
}
