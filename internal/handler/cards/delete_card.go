// File: internal/handler/cards/delete_card.go
package cards

import (
	"errors"
	"net/http"

	"card-space/internal/cache"
	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteCardHandler 刪除名片（管理員或擁有者）
// @Summary     Delete card
// @Tags        cards
// @Produce     json
// @Param       id path string true "名片 ID (hex)"
// @Success     200 {object} dto.CardResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /cards/{id} [delete]
func DeleteCardHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid card id"})
		}

		deleted, err := store.DeleteCard(c.Request().Context(), db, cardID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "card not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to delete card"})
		}

		invalidateCardsCache(c, rc)

		return c.JSON(http.StatusOK, dto.NewCardResponse(deleted))
	}
}
