package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/wheelads"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder.
// SQLite only accepts OFFSET after LIMIT, so an offset without a limit
// uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset <= 0 {
		return
	}
	if limit <= 0 {
		limit = -1
	}
	query.WriteString(" LIMIT ?")
	*args = append(*args, limit)
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// nullable maps an unresolved Value to NULL.
func nullable(v wheelads.Value) sql.NullString {
	s, ok := v.Get()
	return sql.NullString{String: s, Valid: ok}
}

// value maps NULL back to an unresolved Value.
func value(ns sql.NullString) wheelads.Value {
	if !ns.Valid {
		return wheelads.Value{}
	}
	return wheelads.Some(ns.String)
}
