// File: internal/handler/users/login.go
package users

import (
	"net/http"
	"strings"
	"time"

	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/service"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
)

// tokenTTL 存取令牌有效期
const tokenTTL = 24 * time.Hour

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /users/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// 未知 Email 與密碼錯誤回應一致，避免帳號枚舉
		user, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid email or password"})
		}

		authUser, err := service.AuthenticateUser(*user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid email or password"})
		}

		token, err := service.IssueAccessToken(*authUser, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
	}
}
