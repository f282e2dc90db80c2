// File: internal/api/car_request.go
package api

import (
	"strings"

	"carhub/internal/sanitize"
)

// CarRequest 建立與更新車輛共用的請求格式，欄位全部必填
// swagger:model api.CarRequest
type CarRequest struct {
	Category       int    `json:"category" validate:"required" example:"1"`
	Color          string `json:"color" validate:"required" example:"blue"`
	Model          string `json:"model" validate:"required" example:"Corolla"`
	Make           string `json:"make" validate:"required" example:"Toyota"`
	RegistrationNo string `json:"registrationNo" validate:"required" example:"ABC-123"`
}

// Normalize 清洗輸入並修剪車牌號碼
func (r *CarRequest) Normalize() {
	r.Color = sanitize.Clean(strings.TrimSpace(r.Color))
	r.Model = sanitize.Clean(strings.TrimSpace(r.Model))
	r.Make = sanitize.Clean(strings.TrimSpace(r.Make))
	r.RegistrationNo = sanitize.Clean(strings.TrimSpace(r.RegistrationNo))
}
