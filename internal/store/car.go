// File: internal/store/car.go
package store

import (
	"context"
	"fmt"

	"carhub/internal/database"
	"carhub/internal/model"
)

// CarSortColumns 允許的排序鍵與對應欄位，白名單之外的輸入一律回退預設值
var CarSortColumns = map[string]string{
	"registrationNo": "c.registration_no",
	"model":          "c.model",
	"make":           "c.make",
	"color":          "c.color",
	"createdAt":      "c.created_at",
	"updatedAt":      "c.updated_at",
}

// DefaultCarSort 未指定或不合法的排序鍵使用的欄位
const DefaultCarSort = "registrationNo"

const carDetailColumns = `
	c.id, c.category_id, c.color, c.model, c.make, c.registration_no,
	c.created_by, c.created_at, c.updated_at,
	cat.name AS category_name,
	u.name AS creator_name, u.email AS creator_email`

const carDetailJoins = `
	FROM cars c
	JOIN categories cat ON cat.id = c.category_id
	JOIN users u ON u.id = c.created_by`

func scanCarDetail(row interface{ Scan(dest ...any) error }) (*model.CarDetail, error) {
	d := &model.CarDetail{}
	err := row.Scan(
		&d.ID,
		&d.CategoryID,
		&d.Color,
		&d.Model,
		&d.Make,
		&d.RegistrationNo,
		&d.CreatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.CategoryName,
		&d.CreatorName,
		&d.CreatorEmail,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// CreateCar 寫入車輛
// 車牌重複回傳 ErrDuplicate，分類不存在回傳 ErrInvalidReference
func CreateCar(ctx context.Context, db database.DB, car *model.Car) (*model.Car, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO cars (category_id, color, model, make, registration_no, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		car.CategoryID,
		car.Color,
		car.Model,
		car.Make,
		car.RegistrationNo,
		car.CreatedBy,
	)
	if err := row.Scan(&car.ID, &car.CreatedAt, &car.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateCar: %w", translateError(err))
	}
	return car, nil
}

func GetCarByID(ctx context.Context, db database.DB, carID int) (*model.Car, error) {
	row := db.QueryRow(ctx,
		`SELECT id, category_id, color, model, make, registration_no, created_by, created_at, updated_at
		 FROM cars WHERE id = $1`,
		carID,
	)
	car := &model.Car{}
	if err := row.Scan(
		&car.ID,
		&car.CategoryID,
		&car.Color,
		&car.Model,
		&car.Make,
		&car.RegistrationNo,
		&car.CreatedBy,
		&car.CreatedAt,
		&car.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetCarByID: %w", translateError(err))
	}
	return car, nil
}

// GetCarDetailByID 取得展開分類與建立者後的車輛資料
func GetCarDetailByID(ctx context.Context, db database.DB, carID int) (*model.CarDetail, error) {
	row := db.QueryRow(ctx,
		`SELECT `+carDetailColumns+carDetailJoins+` WHERE c.id = $1`,
		carID,
	)
	d, err := scanCarDetail(row)
	if err != nil {
		return nil, fmt.Errorf("GetCarDetailByID: %w", translateError(err))
	}
	return d, nil
}

// ListCars 回傳一頁展開後的車輛與總筆數
// sortKey 必須是 CarSortColumns 中的鍵，其餘輸入回退 DefaultCarSort
func ListCars(ctx context.Context, db database.DB, sortKey string, ascending bool, limit, offset int) ([]model.CarDetail, int, error) {
	column, ok := CarSortColumns[sortKey]
	if !ok {
		column = CarSortColumns[DefaultCarSort]
	}
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		`SELECT %s %s ORDER BY %s %s, c.id LIMIT $1 OFFSET $2`,
		carDetailColumns, carDetailJoins, column, direction,
	)
	rows, err := db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ListCars: %w", translateError(err))
	}
	defer rows.Close()

	cars := []model.CarDetail{}
	for rows.Next() {
		d, err := scanCarDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListCars: %w", translateError(err))
		}
		cars = append(cars, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListCars: %w", translateError(err))
	}

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM cars`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListCars: %w", translateError(err))
	}
	return cars, total, nil
}

// UpdateCar 一次套用全部欄位
// 車牌重複回傳 ErrDuplicate，分類不存在回傳 ErrInvalidReference
func UpdateCar(ctx context.Context, db database.DB, car *model.Car) error {
	row := db.QueryRow(ctx,
		`UPDATE cars
		 SET category_id = $1, color = $2, model = $3, make = $4, registration_no = $5, updated_at = now()
		 WHERE id = $6
		 RETURNING updated_at`,
		car.CategoryID,
		car.Color,
		car.Model,
		car.Make,
		car.RegistrationNo,
		car.ID,
	)
	if err := row.Scan(&car.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateCar: %w", translateError(err))
	}
	return nil
}

// DeleteCar 硬刪除，查無資料列時回傳 ErrNotFound
func DeleteCar(ctx context.Context, db database.DB, carID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM cars WHERE id = $1`,
		carID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCar: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCar: %w", ErrNotFound)
	}
	return nil
}
