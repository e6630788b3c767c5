// File: internal/handler/cards/list_cards.go
package cards

import (
	"encoding/json"
	"net/http"
	"time"

	"card-space/internal/cache"
	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	// cardsCacheKey 公開名片清單的快取鍵
	cardsCacheKey = "cards:all"

	cardsCacheTTL = 30 * time.Second
)

// invalidateCardsCache 於任何名片異動後清除清單快取，失敗僅降級為快取未命中
func invalidateCardsCache(c echo.Context, rc cache.Cache) {
	_ = rc.Del(c.Request().Context(), cardsCacheKey).Err()
}

// ListCardsHandler 取得所有名片（公開，經 Redis read-through 快取）
// @Summary     List all cards
// @Produce     json
// @Tags        cards
// @Success     200 {array}  dto.CardResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /cards [get]
func ListCardsHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rc.Get(ctx, cardsCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		cards, err := store.ListCards(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list cards"})
		}

		payload, err := json.Marshal(dto.NewCardResponses(cards))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to encode cards"})
		}

		_ = rc.Set(ctx, cardsCacheKey, payload, cardsCacheTTL).Err()

		return c.JSONBlob(http.StatusOK, payload)
	}
}
