// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"carhub/internal/cache"
	"carhub/internal/config"
	"carhub/internal/database"
	"carhub/internal/handler"
	"carhub/internal/handler/auth"
	"carhub/internal/handler/cars"
	"carhub/internal/handler/categories"
	"carhub/internal/mailer"
	"carhub/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config, m mailer.Mailer) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(cfg, db, rdb)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db, m))
	api.POST("/auth/login", auth.LoginHandler(cfg, db))

	// 分類：列表公開，其餘需登入
	api.GET("/categories", categories.ListCategoriesHandler(db))
	api.POST("/categories", categories.CreateCategoryHandler(db), requireAuth)
	api.GET("/categories/:id", categories.GetCategoryHandler(db), requireAuth)
	api.PUT("/categories/:id", categories.UpdateCategoryHandler(db), requireAuth)
	api.DELETE("/categories/:id", categories.DeleteCategoryHandler(db), requireAuth)

	// 車輛：列表公開，其餘需登入
	api.GET("/cars", cars.ListCarsHandler(db))
	api.POST("/cars", cars.CreateCarHandler(db), requireAuth)
	api.GET("/cars/:id", cars.GetCarHandler(db), requireAuth)
	api.PUT("/cars/:id", cars.UpdateCarHandler(db), requireAuth)
	api.DELETE("/cars/:id", cars.DeleteCarHandler(db), requireAuth)
}
