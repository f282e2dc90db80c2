// File: internal/api/login_response.go
package api

// UserProfile 公開的使用者投影，絕不包含密碼哈希
// swagger:model api.UserProfile
type UserProfile struct {
	Name  string `json:"name" example:"Ann"`
	Email string `json:"email" example:"ann@example.com"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message string      `json:"message" example:"Login successful"`
	Token   string      `json:"token" example:"eyJhbGciOi..."`
	User    UserProfile `json:"user"`
}
