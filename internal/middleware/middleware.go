package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"card-space/internal/database"
	"card-space/internal/service"
	"card-space/internal/store"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ContextUserKey = "user"

	// ContextCardKey holds the target card loaded by the CardOwner check.
	ContextCardKey = "card"
)

// Requirement names a predicate over the authenticated identity and,
// for CardOwner, the target resource. A route's requirements combine
// with short-circuit OR: any satisfied requirement admits the request.
type Requirement string

const (
	AdminOnly    Requirement = "isAdmin"
	BusinessOnly Requirement = "isBusiness"
	UserOwner    Requirement = "userOwner"
	CardOwner    Requirement = "cardOwner"
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := parts[1]
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// Require admits an authenticated request that satisfies at least one of
// the given requirements. With no requirements any valid token passes.
func Require(db database.DB, reqs ...Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			if len(reqs) == 0 {
				return next(c)
			}
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			for _, r := range reqs {
				ok, err := satisfied(c, db, claims, r)
				if err != nil {
					return err
				}
				if ok {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
		})
	}
}

func satisfied(c echo.Context, db database.DB, claims *service.CustomClaims, r Requirement) (bool, error) {
	switch r {
	case AdminOnly:
		return claims.IsAdmin, nil
	case BusinessOnly:
		return claims.IsBusiness, nil
	case UserOwner:
		// 以 ObjectID 比對，十六進位大小寫不影響判定
		userID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return false, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		}
		ownID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return false, nil
		}
		return userID == ownID, nil
	case CardOwner:
		cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			return false, echo.NewHTTPError(http.StatusBadRequest, "invalid card id")
		}
		card, err := store.GetCardByID(c.Request().Context(), db, cardID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return false, echo.NewHTTPError(http.StatusNotFound, "card not found")
			}
			return false, echo.NewHTTPError(http.StatusInternalServerError, "failed to load card")
		}
		c.Set(ContextCardKey, card)
		return card.UserID.Hex() == claims.UserID, nil
	default:
		return false, fmt.Errorf("unknown requirement %q", r)
	}
}
