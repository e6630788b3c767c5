// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 取得所有使用者（僅管理員）
// @Summary     List all users
// @Tags        users
// @Produce     json
// @Success     200 {array}  dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := store.ListUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list users"})
		}
		return c.JSON(http.StatusOK, dto.NewUserResponses(users))
	}
}
