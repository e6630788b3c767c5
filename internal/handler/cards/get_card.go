// File: internal/handler/cards/get_card.go
package cards

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

// GetCardHandler 依 ID 取得名片（公開）
// @Summary     Get card by ID
// @Tags        cards
// @Produce     json
// @Param       id path string true "名片 ID (hex)"
// @Success     200 {object} dto.CardResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /cards/{id} [get]
func GetCardHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid card id"})
		}

		card, err := store.GetCardByID(c.Request().Context(), db, cardID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "card not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load card"})
		}

		return c.JSON(http.StatusOK, dto.NewCardResponse(card))
	}
}
