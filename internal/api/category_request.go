// File: internal/api/category_request.go
package api

import (
	"strings"

	"carhub/internal/sanitize"
)

// CategoryRequest 建立與更新分類共用的請求格式
// swagger:model api.CategoryRequest
type CategoryRequest struct {
	Name string `json:"name" validate:"required" example:"Sedans"`
}

// Normalize 去除前後空白並清洗輸入
func (r *CategoryRequest) Normalize() {
	r.Name = sanitize.Clean(strings.TrimSpace(r.Name))
}
