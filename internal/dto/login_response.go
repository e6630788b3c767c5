// File: internal/dto/login_response.go
package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOi..."`
}
