// File: internal/model/car.go
package model

import "time"

// Car 參照一個分類與一位建立者，registration_no 全域唯一
type Car struct {
	ID             int       `db:"id" json:"id"`
	CategoryID     int       `db:"category_id" json:"category_id"`
	Color          string    `db:"color" json:"color"`
	Model          string    `db:"model" json:"model"`
	Make           string    `db:"make" json:"make"`
	RegistrationNo string    `db:"registration_no" json:"registration_no"`
	CreatedBy      int       `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// CarDetail 為 Car 加上展開後的分類名稱與建立者資料（population）
type CarDetail struct {
	Car
	CategoryName string `db:"category_name" json:"category_name"`
	CreatorName  string `db:"creator_name" json:"creator_name"`
	CreatorEmail string `db:"creator_email" json:"creator_email"`
}
