package db

import (
	"context"
	"database/sql"
	"errors"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema. Only an
// empty result means absent; any other failure is returned.
func HasTable(ctx context.Context, q QueryRower, d Dialect, table string) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, d.Rebind(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = `+d.schemaExpr()+`
		  AND table_name = ?
		LIMIT 1
	`), table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name.Valid && name.String != "", nil
}
