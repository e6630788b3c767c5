// File: internal/handler/cards/create_card.go
package cards

import (
	"errors"
	"net/http"

	"card-space/internal/cache"
	"card-space/internal/database"
	"card-space/internal/dto"
	"card-space/internal/middleware"
	"card-space/internal/model"
	"card-space/internal/service"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardRequest 定義建立與編輯名片共用的請求格式
// swagger:model CardRequest
type CardRequest struct {
	// 商家名稱
	// required: true
	Title string `json:"title" validate:"required,min=2" example:"Cohen Plumbing"`

	// 商家描述
	// required: true
	Description string `json:"description" validate:"required,min=2" example:"24/7 emergency plumbing"`

	// 商家地址
	// required: true
	Address string `json:"address" validate:"required" example:"12 Herzl St, Tel Aviv"`

	// 聯絡電話
	// required: true
	Phone string `json:"phone" validate:"required,min=7" example:"050-1234567"`

	// 圖片網址，可省略
	Image string `json:"image" validate:"omitempty,url" example:"https://example.com/card.png"`
}

// CreateCardHandler 建立新名片（僅商業帳號）
// @Summary     Create a new card
// @Description 產生唯一 bizNumber 並以目前使用者為擁有者建立名片
// @Tags        cards
// @Accept      json
// @Produce     json
// @Param       body body CardRequest true "名片資料"
// @Success     201 {object} dto.CardResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /cards [post]
func CreateCardHandler(db database.DB, rc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		ownerID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid token subject"})
		}

		var req CardRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		bizNumber, err := service.GenerateBizNumber(c.Request().Context(), db)
		if err != nil {
			if errors.Is(err, service.ErrGenerationExhausted) {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to allocate a biz number"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to generate biz number"})
		}

		card := &model.Card{
			UserID:      ownerID,
			BizNumber:   bizNumber,
			Title:       req.Title,
			Description: req.Description,
			Address:     req.Address,
			Phone:       req.Phone,
			Image:       req.Image,
		}

		created, err := store.CreateCard(c.Request().Context(), db, card)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create card"})
		}

		invalidateCardsCache(c, rc)

		return c.JSON(http.StatusCreated, dto.NewCardResponse(created))
	}
}
