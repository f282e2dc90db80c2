// File: internal/store/errors.go
package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料列
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 唯一索引衝突，為唯一性檢查的權威訊號
	ErrDuplicate = errors.New("duplicate value")
	// ErrInvalidReference 外鍵指向不存在的資料列
	ErrInvalidReference = errors.New("invalid reference")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError 將 pgx 錯誤轉為儲存層的哨兵錯誤
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	return err
}
