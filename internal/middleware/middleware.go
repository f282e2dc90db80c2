// File: internal/middleware/middleware.go
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"carhub/internal/cache"
	"carhub/internal/config"
	"carhub/internal/database"
	"carhub/internal/service"
	"carhub/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// identityTTL 快取的身分投影存活時間
const identityTTL = 5 * time.Minute

var getUserByID = store.GetUserByID

// AuthUser 驗證通過後掛在 context 上的身分投影
type AuthUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CurrentUser 取出 RequireAuth 解析出的身分，未經認證的路由回傳 nil
func CurrentUser(c echo.Context) *AuthUser {
	u, _ := c.Get(ContextUserKey).(*AuthUser)
	return u
}

func extractClaims(cfg *config.Config, c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(cfg, parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// resolveUser 以快取優先將 token subject 還原成使用者身分
func resolveUser(ctx context.Context, db database.DB, rdb cache.Cache, userID int) (*AuthUser, error) {
	key := fmt.Sprintf("auth:user:%d", userID)
	if raw, err := rdb.Get(ctx, key).Result(); err == nil {
		u := &AuthUser{}
		if err := json.Unmarshal([]byte(raw), u); err == nil {
			return u, nil
		}
	}

	stored, err := getUserByID(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	u := &AuthUser{ID: stored.ID, Name: stored.Name, Email: stored.Email}

	// 快取寫入失敗不影響本次請求
	if raw, err := json.Marshal(u); err == nil {
		rdb.Set(ctx, key, raw, identityTTL)
	}
	return u, nil
}

// RequireAuth 驗證 Bearer token 並將使用者身分掛到 context
func RequireAuth(cfg *config.Config, db database.DB, rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(cfg, c)
			if err != nil {
				return err
			}
			user, err := resolveUser(c.Request().Context(), db, rdb, claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token: unknown user")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
