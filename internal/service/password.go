// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordCost 固定的 bcrypt cost factor
const passwordCost = 12

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
// bcrypt 自帶鹽值，同一密碼每次產生不同的哈希
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
