// File: internal/api/category_response.go
package api

import (
	"time"

	"carhub/internal/model"
)

// swagger:model api.CategoryResponse
type CategoryResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Sedans"`
	CreatedBy int       `json:"created_by" example:"7"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// swagger:model api.CreateCategoryResponse
type CreateCategoryResponse struct {
	Message  string           `json:"message" example:"Category created successfully"`
	Category CategoryResponse `json:"category"`
}

// CategoryListResponse 分頁結果與總筆數
// swagger:model api.CategoryListResponse
type CategoryListResponse struct {
	Categories      []CategoryResponse `json:"categories"`
	TotalCategories int                `json:"totalCategories" example:"12"`
}

// NewCategoryResponse 將儲存層模型轉為回應投影
func NewCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
