// File: internal/model/user.go
package model

import "time"

// User 註冊時建立，password_hash 僅供驗證，不得回傳給客戶端
type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
