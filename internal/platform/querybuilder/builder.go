package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause with $n placeholders.
type Condition interface {
	appendSQL(w *writer)
}

type writer struct {
	buf  strings.Builder
	args []any
}

func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(w *writer) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" = ")
	w.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

// In matches column against a list. An empty list matches nothing.
func In[T any](column string, values []T) Condition {
	items := make([]any, 0, len(values))
	for _, v := range values {
		items = append(items, v)
	}
	return inCondition{column: column, values: items}
}

func (c inCondition) appendSQL(w *writer) {
	if len(c.values) == 0 {
		w.buf.WriteString("1=0")
		return
	}

	w.buf.WriteString(c.column)
	w.buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.bind(v)
	}
	w.buf.WriteString(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) appendSQL(w *writer) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" IS NULL")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
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

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &writer{}
	w.buf.WriteString("SELECT ")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(" FROM ")
	w.buf.WriteString(b.table)

	if len(b.where) > 0 {
		w.buf.WriteString(" WHERE ")
		for i, c := range b.where {
			if i > 0 {
				w.buf.WriteString(" AND ")
			}
			c.appendSQL(w)
		}
	}
	if len(b.orderBy) > 0 {
		w.buf.WriteString(" ORDER BY ")
		w.buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.buf.WriteString(" LIMIT ")
		w.buf.WriteString(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}

type InsertBuilder struct {
	table         string
	columns       []string
	values        []any
	conflictKeys  []string
	conflictWrite bool
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

// OnConflictUpdate turns the insert into an upsert keyed by keys. Every other column is
// overwritten with the excluded row.
func (b *InsertBuilder) OnConflictUpdate(keys ...string) *InsertBuilder {
	b.conflictKeys = append([]string(nil), keys...)
	b.conflictWrite = true
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values, expected %d", len(b.values), len(b.columns))
	}

	w := &writer{}
	w.buf.WriteString("INSERT INTO ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" (")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.bind(v)
	}
	w.buf.WriteString(")")

	if b.conflictWrite {
		if len(b.conflictKeys) == 0 {
			return "", nil, fmt.Errorf("conflict keys are required")
		}
		keys := make(map[string]struct{}, len(b.conflictKeys))
		for _, k := range b.conflictKeys {
			keys[k] = struct{}{}
		}
		updates := make([]string, 0, len(b.columns))
		for _, col := range b.columns {
			if _, ok := keys[col]; ok {
				continue
			}
			updates = append(updates, col+" = EXCLUDED."+col)
		}
		w.buf.WriteString(" ON CONFLICT (")
		w.buf.WriteString(strings.Join(b.conflictKeys, ", "))
		if len(updates) == 0 {
			w.buf.WriteString(") DO NOTHING")
		} else {
			w.buf.WriteString(") DO UPDATE SET ")
			w.buf.WriteString(strings.Join(updates, ", "))
		}
	}

	return w.buf.String(), w.args, nil
}
