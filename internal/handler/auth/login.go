// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"carhub/internal/api"
	"carhub/internal/config"
	"carhub/internal/database"
	"carhub/internal/service"
	"carhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT 與公開的使用者投影
// @Summary     登入使用者
// @Description 驗證帳密並發行存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(cfg *config.Config, db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and Password are required"})
		}

		// 查無使用者與密碼錯誤回同一訊息，避免洩漏帳號是否存在
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid email or password"})
		}
		if err := authenticateUser(*user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid email or password"})
		}

		token, err := issueAccessToken(cfg, *user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Login failed"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    api.UserProfile{Name: user.Name, Email: user.Email},
		})
	}
}
