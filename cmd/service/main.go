// File: cmd/service/main.go
// @title        card-space API
// @version      1.0
// @description  名片分享服務的後端 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"card-space/internal/cache"
	"card-space/internal/database"
	"card-space/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	_ "card-space/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newMongoDB     = database.NewMongoDB
	newRedisClient = cache.NewRedisClient
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc       = os.Exit
)

func run() error {
	// .env 檔為可選，環境變數優先
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return fmt.Errorf("環境變數 MONGODB_URI 未設定")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = i
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := newMongoDB(context.Background(), mongoURI)
	if err != nil {
		return fmt.Errorf("MongoDB 連線失敗: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Warnf("關閉 MongoDB 連線失敗: %v", err)
		}
	}()
	log.Info("connected to MongoDB")

	rc, err := newRedisClient(redisAddr, os.Getenv("REDIS_PASSWORD"), redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			log.Warnf("關閉 Redis 連線失敗: %v", err)
		}
	}()
	log.Info("connected to Redis")

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, db, rc)

	e.Static("/", "public")

	// 未匹配路由與靜態檔案缺失回傳固定 404 頁
	// 靜態路由僅註冊 GET /*，其餘方法落入 method-not-allowed，一併視為未匹配
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if (err == echo.ErrNotFound || err == echo.ErrMethodNotAllowed) && !c.Response().Committed {
			if serr := c.String(http.StatusNotFound, "404 Page Not Found."); serr != nil {
				e.Logger.Error(serr)
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Infof("listening on :%s", port)
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		exitFunc(1)
	}
}
