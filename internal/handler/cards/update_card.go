// File: internal/handler/cards/update_card.go
package cards

import (
	"errors"
	"net/http"

	"card-space/internal/cache"
	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/model"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateCardHandler 編輯名片內容（僅擁有者）
// @Summary     Update card
// @Description 更新名片內容欄位；bizNumber、擁有者與 likes 不受影響
// @Tags        cards
// @Accept      json
// @Produce     json
// @Param       id   path string      true "名片 ID (hex)"
// @Param       body body CardRequest true "名片資料"
// @Success     200 {object} dto.CardResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /cards/{id} [put]
func UpdateCardHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid card id"})
		}

		var req CardRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		updated, err := store.UpdateCard(c.Request().Context(), db, &model.Card{
			ID:          cardID,
			Title:       req.Title,
			Description: req.Description,
			Address:     req.Address,
			Phone:       req.Phone,
			Image:       req.Image,
		})
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "card not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to update card"})
		}

		invalidateCardsCache(c, rc)

		return c.JSON(http.StatusOK, dto.NewCardResponse(updated))
	}
}
