// File: internal/handler/users/delete_user.go
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

// DeleteUserHandler 刪除使用者（管理員或本人）
// @Summary     Delete user
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
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		deleted, err := store.DeleteUser(c.Request().Context(), db, userID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "the user does not exist"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to delete user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(deleted))
	}
}
