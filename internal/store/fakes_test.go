package store

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 以值序列回填 Scan 的目的指標
type fakeRow struct {
	scanErr error
	values  []any
}

func assign(dest []any, values []any) {
	for i, v := range values {
		switch p := dest[i].(type) {
		case *int:
			*p = v.(int)
		case *string:
			*p = v.(string)
		case *time.Time:
			*p = v.(time.Time)
		case *bool:
			*p = v.(bool)
		default:
			panic("fakeRow.Scan: unsupported dest type")
		}
	}
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if len(dest) != len(r.values) {
		panic("fakeRow.Scan: unexpected dest count")
	}
	assign(dest, r.values)
	return nil
}

// fakeRows 供 Query 路徑逐列回傳
type fakeRows struct {
	rows    [][]any
	idx     int
	scanErr error
	rowsErr error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.rowsErr }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	assign(dest, r.rows[r.idx-1])
	return nil
}
