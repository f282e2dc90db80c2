// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"carhub/internal/api"
	"carhub/internal/database"
	"carhub/internal/mailer"
	"carhub/internal/model"
	"carhub/internal/service"
	"carhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	generateRandomPassword = service.GenerateRandomPassword
	hashPassword           = service.HashPassword
	createUser             = store.CreateUser
)

// RegisterHandler 註冊新使用者並寄送含隨機密碼的歡迎信
// 注意：使用者寫入後才寄信，寄信失敗回 500 但不回滾使用者
// @Summary     Register a new user
// @Description 建立帳號並以 Email 寄送系統產生的密碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, m mailer.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Name and email are required"})
		}

		password, err := generateRandomPassword()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "User registration failed"})
		}
		hash, err := hashPassword(password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "User registration failed"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "User already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "User registration failed"})
		}

		if err := m.SendWelcome(user.Email, user.Name, password); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "User registration failed"})
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User registered successfully, email sent"})
	}
}
