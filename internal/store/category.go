// File: internal/store/category.go
package store

import (
	"context"
	"fmt"

	"carhub/internal/database"
	"carhub/internal/model"
)

// CreateCategory 寫入分類，同一建立者重名時回傳 ErrDuplicate
func CreateCategory(ctx context.Context, db database.DB, c *model.Category) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO categories (name, created_by)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		c.Name,
		c.CreatedBy,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateCategory: %w", translateError(err))
	}
	return c, nil
}

func GetCategoryByID(ctx context.Context, db database.DB, categoryID int) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, created_by, created_at, updated_at
		 FROM categories WHERE id = $1`,
		categoryID,
	)
	c := &model.Category{}
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetCategoryByID: %w", translateError(err))
	}
	return c, nil
}

// ListCategories 回傳一頁分類與總筆數
func ListCategories(ctx context.Context, db database.DB, limit, offset int) ([]model.Category, int, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, created_by, created_at, updated_at
		 FROM categories
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListCategories: %w", translateError(err))
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("ListCategories: %w", translateError(err))
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListCategories: %w", translateError(err))
	}

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListCategories: %w", translateError(err))
	}
	return categories, total, nil
}

// UpdateCategoryName 更新分類名稱，重名時回傳 ErrDuplicate
func UpdateCategoryName(ctx context.Context, db database.DB, categoryID int, name string) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`UPDATE categories
		 SET name = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING id, name, created_by, created_at, updated_at`,
		name,
		categoryID,
	)
	c := &model.Category{}
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpdateCategoryName: %w", translateError(err))
	}
	return c, nil
}

// DeleteCategory 硬刪除，查無資料列時回傳 ErrNotFound
func DeleteCategory(ctx context.Context, db database.DB, categoryID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM categories WHERE id = $1`,
		categoryID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCategory: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCategory: %w", ErrNotFound)
	}
	return nil
}
