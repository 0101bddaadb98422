package repositories

import (
	"database/sql"
	"strings"

	intconfig "trekhub/internal/config"
	intdb "trekhub/internal/db"
)

// handle resolves the connection and dialect a repository should use,
// falling back to the shared connection when none was injected.
func handle(db *sql.DB, d intdb.Dialect) (*sql.DB, intdb.Dialect) {
	if db != nil {
		return db, d
	}
	return intconfig.DB, intconfig.Dialect
}

// uniqueNonEmpty keeps first-seen order and drops blanks and duplicates.
func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func toArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

func nullIntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
