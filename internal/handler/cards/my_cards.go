// File: internal/handler/cards/my_cards.go
package cards

import (
	"net/http"

	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/middleware"
	"card-space/internal/service"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MyCardsHandler 取得目前使用者擁有的名片
// @Summary     List my cards
// @Tags        cards
// @Produce     json
// @Success     200 {array}  dto.CardResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /cards/my-cards [get]
func MyCardsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid token subject"})
		}

		cards, err := store.ListCardsByOwner(c.Request().Context(), db, ownerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list cards"})
		}

		return c.JSON(http.StatusOK, dto.NewCardResponses(cards))
	}
}
