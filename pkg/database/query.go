package database

import (
	"strconv"
	"strings"
)

// Query assembles a SELECT with AND-ed conditions. Conditions are written with
// '?' placeholders and numbered ($1, $2, ...) by Build, which both drivers
// accept.
type Query struct {
	base    string
	where   []string
	args    []any
	orderBy string
}

// Select starts a query from a SELECT ... FROM clause.
func Select(base string) *Query {
	return &Query{base: base}
}

// Where appends a condition. Each '?' in cond consumes one arg.
func (q *Query) Where(cond string, args ...any) *Query {
	q.where = append(q.where, cond)
	q.args = append(q.args, args...)
	return q
}

// OrderBy sets the ORDER BY clause.
func (q *Query) OrderBy(clause string) *Query {
	q.orderBy = clause
	return q
}

// Build returns the SQL text and its positional arguments.
func (q *Query) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString(q.base)
	if len(q.where) > 0 {
		sb.WriteString(" WHERE ")
		for i, cond := range q.where {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			if len(q.where) > 1 && strings.Contains(strings.ToUpper(cond), " OR ") {
				sb.WriteString("(" + cond + ")")
			} else {
				sb.WriteString(cond)
			}
		}
	}
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	return Rebind(sb.String()), q.args
}

// Rebind rewrites '?' placeholders as $1..$n.
func Rebind(query string) string {
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
