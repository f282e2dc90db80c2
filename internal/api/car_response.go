// File: internal/api/car_response.go
package api

import (
	"time"

	"carhub/internal/model"
)

// CategoryRef 展開後的分類投影
// swagger:model api.CategoryRef
type CategoryRef struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Sedans"`
}

// CreatorRef 展開後的建立者投影
// swagger:model api.CreatorRef
type CreatorRef struct {
	ID    int    `json:"id" example:"7"`
	Name  string `json:"name" example:"Ann"`
	Email string `json:"email" example:"ann@example.com"`
}

// swagger:model api.CarResponse
type CarResponse struct {
	ID             int         `json:"id" example:"3"`
	Category       CategoryRef `json:"category"`
	Color          string      `json:"color" example:"blue"`
	Model          string      `json:"model" example:"Corolla"`
	Make           string      `json:"make" example:"Toyota"`
	RegistrationNo string      `json:"registrationNo" example:"ABC-123"`
	CreatedBy      CreatorRef  `json:"createdBy"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CarListResponse 分頁結果與總筆數
// swagger:model api.CarListResponse
type CarListResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalCars int           `json:"totalCars" example:"12"`
}

// NewCarResponse 將展開後的儲存層模型轉為回應投影
func NewCarResponse(d *model.CarDetail) CarResponse {
	return CarResponse{
		ID:             d.ID,
		Category:       CategoryRef{ID: d.CategoryID, Name: d.CategoryName},
		Color:          d.Color,
		Model:          d.Model,
		Make:           d.Make,
		RegistrationNo: d.RegistrationNo,
		CreatedBy:      CreatorRef{ID: d.CreatedBy, Name: d.CreatorName, Email: d.CreatorEmail},
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
