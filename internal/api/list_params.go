// File: internal/api/list_params.go
package api

// ListParams 通用分頁參數，未給或不合法時回退預設值
type ListParams struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize 套用預設值 page=1 limit=10
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// Offset 回傳對應的資料列偏移
func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// CarListParams 車輛列表額外接受排序參數
type CarListParams struct {
	ListParams
	Sort      string `query:"sort"`
	SortOrder string `query:"sortOrder"`
}
