// File: internal/handler/users/get_user.go
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

// GetUserHandler 依 ID 取得使用者（管理員或本人）
// @Summary     Get user by ID
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID (hex)"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		user, err := store.GetUserByID(c.Request().Context(), db, userID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
