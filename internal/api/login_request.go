// File: internal/api/login_request.go
package api

import (
	"strings"

	"carhub/internal/sanitize"
)

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ann@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// Normalize 清洗 Email；密碼原樣保留參與比對
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(sanitize.Clean(strings.TrimSpace(r.Email)))
}
