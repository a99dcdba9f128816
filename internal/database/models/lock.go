package models

import (
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// forUpdate adds a row lock to the query on dialects that support it.
// SQLite serializes writers at the database level and has no row locks.
func forUpdate(q *bun.SelectQuery) *bun.SelectQuery {
	if q.DB().Dialect().Name() == dialect.PG {
		return q.For("UPDATE")
	}
	return q
}
