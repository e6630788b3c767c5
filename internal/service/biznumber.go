// File: internal/service/biznumber.go
package service

import (
	"context"
	"errors"
	"math/rand"

	"card-space/internal/database"
	"card-space/internal/store"
)

const (
	bizNumberMin = 100000
	bizNumberMax = 999999

	// maxBizNumberAttempts 限制碰撞重試次數
	maxBizNumberAttempts = 10
)

// ErrGenerationExhausted 表示重試額度用盡仍未取得未使用的編號
var ErrGenerationExhausted = errors.New("biz number generation exhausted")

// drawBizNumber 測試可覆寫此變數以取得固定序列。
var drawBizNumber = func() int {
	return bizNumberMin + rand.Intn(bizNumberMax-bizNumberMin+1)
}

// GenerateBizNumber 產生未被任何名片使用的商業編號
// 採 check-then-use：查詢碰撞後重抽，並發建立下的重複由唯一索引擋下
func GenerateBizNumber(ctx context.Context, db database.DB) (int, error) {
	for i := 0; i < maxBizNumberAttempts; i++ {
		candidate := drawBizNumber()
		taken, err := store.CardBizNumberTaken(ctx, db, candidate)
		if err != nil {
			return 0, err
		}
		if !taken {
			return candidate, nil
		}
	}
	return 0, ErrGenerationExhausted
}
