// File: internal/handler/categories/category.go
package categories

import (
	"errors"
	"net/http"
	"strconv"

	"carhub/internal/api"
	"carhub/internal/database"
	"carhub/internal/middleware"
	"carhub/internal/model"
	"carhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createCategory     = store.CreateCategory
	getCategoryByID    = store.GetCategoryByID
	listCategories     = store.ListCategories
	updateCategoryName = store.UpdateCategoryName
	deleteCategory     = store.DeleteCategory
)

// CreateCategoryHandler 建立分類，名稱在同一建立者底下必須唯一
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body api.CategoryRequest true "分類資料"
// @Success     201 {object} api.CreateCategoryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories [post]
func CreateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Category Name is required"})
		}

		category, err := createCategory(c.Request().Context(), db, &model.Category{
			Name:      req.Name,
			CreatedBy: user.ID,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Category already exists for this user"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error creating category"})
		}

		return c.JSON(http.StatusCreated, api.CreateCategoryResponse{
			Message:  "Category created successfully",
			Category: api.NewCategoryResponse(category),
		})
	}
}

// GetCategoryHandler 取得單一分類，任何已認證使用者皆可讀取
// @Summary     Get a category by ID
// @Tags        categories
// @Produce     json
// @Param       id path int true "分類 ID"
// @Success     200 {object} api.CategoryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories/{id} [get]
func GetCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category id"})
		}

		category, err := getCategoryByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error fetching category"})
		}

		return c.JSON(http.StatusOK, api.NewCategoryResponse(category))
	}
}

// ListCategoriesHandler 分頁列出所有分類，不需認證
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Param       page  query int false "頁碼，預設 1"
// @Param       limit query int false "每頁筆數，預設 10"
// @Success     200 {object} api.CategoryListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var params api.ListParams
		if err := c.Bind(&params); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		params.Normalize()

		categories, total, err := listCategories(c.Request().Context(), db, params.Limit, params.Offset())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error fetching categories"})
		}

		resp := api.CategoryListResponse{
			Categories:      make([]api.CategoryResponse, 0, len(categories)),
			TotalCategories: total,
		}
		for i := range categories {
			resp.Categories = append(resp.Categories, api.NewCategoryResponse(&categories[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// UpdateCategoryHandler 重新命名分類，僅建立者可操作
// @Summary     Rename a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int                 true "分類 ID"
// @Param       request body api.CategoryRequest true "新名稱"
// @Success     200 {object} api.CategoryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories/{id} [put]
func UpdateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category id"})
		}

		var req api.CategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Category Name is required"})
		}

		category, err := getCategoryByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating category"})
		}
		if category.CreatedBy != user.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: You are not authorized to edit this category"})
		}

		updated, err := updateCategoryName(c.Request().Context(), db, id, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicate):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Category name already exists"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Category not found"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating category"})
			}
		}

		return c.JSON(http.StatusOK, api.NewCategoryResponse(updated))
	}
}

// DeleteCategoryHandler 硬刪除分類，僅建立者可操作
// @Summary     Delete a category
// @Tags        categories
// @Produce     json
// @Param       id path int true "分類 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories/{id} [delete]
func DeleteCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid category id"})
		}

		category, err := getCategoryByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting category"})
		}
		if category.CreatedBy != user.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: You are not authorized to delete this category"})
		}

		if err := deleteCategory(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting category"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Category deleted successfully"})
	}
}
