// File: internal/handler/cards/like_card.go
package cards

import (
	"errors"
	"net/http"

	"card-space/internal/cache"
	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/middleware"
	"card-space/internal/service"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeCardHandler 將目前使用者加入名片的 likes（每人最多一次）
// @Summary     Like a card
// @Description 重複按讚回傳 409；檢查與寫入為兩步，並發下的重複為已知邊界
// @Tags        cards
// @Produce     json
// @Param       id path string true "名片 ID (hex)"
// @Success     200 {object} dto.CardResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /cards/{id} [patch]
func LikeCardHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid token subject"})
		}

		cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid card id"})
		}

		liked, err := store.UserLikedCard(c.Request().Context(), db, cardID, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to check likes"})
		}
		if liked {
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: "You already liked this card."})
		}

		updated, err := store.AddCardLike(c.Request().Context(), db, cardID, userID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "card not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to like card"})
		}

		invalidateCardsCache(c, rc)

		return c.JSON(http.StatusOK, dto.NewCardResponse(updated))
	}
}
