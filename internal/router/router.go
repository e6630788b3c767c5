// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"card-space/internal/cache"
	"card-space/internal/database"
	"card-space/internal/handler/cards"
	"card-space/internal/handler/users"
	"card-space/internal/middleware"
)

// Setup 註冊所有路由與授權需求
func Setup(e *echo.Echo, db database.DB, rc cache.Cache) {
	u := e.Group("/users")
	u.POST("", users.RegisterHandler(db))
	u.POST("/login", users.LoginHandler(db))
	u.GET("", users.ListUsersHandler(db), middleware.Require(db, middleware.AdminOnly))
	u.GET("/:id", users.GetUserHandler(db), middleware.Require(db, middleware.AdminOnly, middleware.UserOwner))
	u.PUT("/:id", users.UpdateUserHandler(db), middleware.Require(db, middleware.UserOwner))
	u.PATCH("/:id", users.SetBusinessHandler(db), middleware.Require(db, middleware.UserOwner))
	u.DELETE("/:id", users.DeleteUserHandler(db), middleware.Require(db, middleware.AdminOnly, middleware.UserOwner))

	cg := e.Group("/cards")
	cg.GET("", cards.ListCardsHandler(db, rc))
	cg.GET("/my-cards", cards.MyCardsHandler(db), middleware.Require(db))
	cg.GET("/:id", cards.GetCardHandler(db))
	cg.POST("", cards.CreateCardHandler(db, rc), middleware.Require(db, middleware.BusinessOnly))
	cg.PUT("/:id", cards.UpdateCardHandler(db, rc), middleware.Require(db, middleware.CardOwner))
	cg.PATCH("/:id", cards.LikeCardHandler(db, rc), middleware.Require(db))
	cg.DELETE("/:id", cards.DeleteCardHandler(db, rc), middleware.Require(db, middleware.AdminOnly, middleware.CardOwner))
}
