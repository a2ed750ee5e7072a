// Package querybuilder renders parameterized Postgres statements from a
// small fluent API. It covers the select and insert shapes the match
// repositories need and nothing more.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type Condition interface {
	render(buf *strings.Builder, args *[]any, next *int)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) render(buf *strings.Builder, args *[]any, next *int) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(placeholder(*next))
	*args = append(*args, c.value)
	*next++
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) render(buf *strings.Builder, args *[]any, next *int) {
	if len(c.values) == 0 {
		buf.WriteString("1=0")
		return
	}
	buf.WriteString(c.column)
	buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(placeholder(*next))
		*args = append(*args, v)
		*next++
	}
	buf.WriteString(")")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds a raw fragment, rewriting each ? to a positional placeholder.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) render(buf *strings.Builder, args *[]any, next *int) {
	buf.WriteString(rewritePlaceholders(c.expr, c.args, args, next))
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
	offset  int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select needs columns")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select needs a table")
	}

	var buf strings.Builder
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	args := make([]any, 0, len(b.where))
	next := 1
	renderWhere(&buf, b.where, &args, &next)

	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}
	if b.offset > 0 {
		buf.WriteString(" OFFSET ")
		buf.WriteString(strconv.Itoa(b.offset))
	}

	return buf.String(), args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends a trailing clause such as an ON CONFLICT upsert.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert needs a table")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert needs columns")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert needs values")
	}

	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES ")

	args := make([]any, 0, len(b.rows)*len(b.columns))
	next := 1
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(placeholder(next))
			args = append(args, value)
			next++
		}
		buf.WriteString(")")
	}

	if b.suffix != "" {
		buf.WriteString(" ")
		buf.WriteString(rewritePlaceholders(b.suffix, nil, &args, &next))
	}

	return buf.String(), args, nil
}

func renderWhere(buf *strings.Builder, conditions []Condition, args *[]any, next *int) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		c.render(buf, args, next)
	}
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}

func rewritePlaceholders(expr string, exprArgs []any, args *[]any, next *int) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	consumed := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' {
			out.WriteByte(expr[i])
			continue
		}
		if consumed >= len(exprArgs) {
			out.WriteByte('?')
			continue
		}
		out.WriteString(placeholder(*next))
		*args = append(*args, exprArgs[consumed])
		consumed++
		*next++
	}
	return out.String()
}
