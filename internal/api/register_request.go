// File: internal/api/register_request.go
package api

import (
	"strings"

	"carhub/internal/sanitize"
)

// RegisterRequest 註冊新使用者的請求格式
// 密碼由系統產生並寄送，不由客戶端提供
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name  string `json:"name" validate:"required" example:"Ann"`
	Email string `json:"email" validate:"required,email" example:"ann@example.com"`
}

// Normalize 清洗輸入並將 Email 轉為小寫
func (r *RegisterRequest) Normalize() {
	r.Name = sanitize.Clean(strings.TrimSpace(r.Name))
	r.Email = strings.ToLower(sanitize.Clean(strings.TrimSpace(r.Email)))
}
