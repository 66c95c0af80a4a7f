package mapper

import (
	"context"
	"database/sql"
	"fmt"
	"iter"

	"github.com/aarondl/sqlboiler/v4/boil"
)

// SQLCursor adapts *sql.Rows to Cursor. Each row is scanned into driver values
// once per Next; a scan failure ends the cursor and is reported by Err.
type SQLCursor struct {
	rows    *sql.Rows
	columns []string
	values  []any
	dest    []any
	err     error
}

// NewSQLCursor wraps rows. The cursor owns rows from here on and closes them.
func NewSQLCursor(rows *sql.Rows) (*SQLCursor, error) {
	cols, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("reading result columns: %w", err)
	}
	c := &SQLCursor{rows: rows, columns: cols, values: make([]any, len(cols)), dest: make([]any, len(cols))}
	for i := range c.values {
		c.dest[i] = &c.values[i]
	}
	return c, nil
}

func (c *SQLCursor) ColumnCount() int { return len(c.columns) }

func (c *SQLCursor) ColumnName(i int) string { return c.columns[i] }

func (c *SQLCursor) Next() bool {
	if c.err != nil || !c.rows.Next() {
		return false
	}
	if err := c.rows.Scan(c.dest...); err != nil {
		c.err = fmt.Errorf("scanning row: %w", err)
		return false
	}
	return true
}

func (c *SQLCursor) Value(i int) any { return c.values[i] }

func (c *SQLCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.rows.Err()
}

func (c *SQLCursor) Close() error { return c.rows.Close() }

// Query runs query on exec and streams the result through def with opts applied.
// exec is any sqlboiler executor: *sql.DB, *sql.Tx or boil.GetContextDB().
func Query[T any](ctx context.Context, exec boil.ContextExecutor, def Definition[T], opts []Option, query string, args ...any) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		if boil.IsDebug(ctx) {
			writer := boil.DebugWriterFrom(ctx)
			fmt.Fprintln(writer, query)
			fmt.Fprintln(writer, args...)
		}
		rows, err := exec.QueryContext(ctx, query, args...)
		if err != nil {
			yield(nil, fmt.Errorf("executing query: %w", err))
			return
		}
		cursor, err := NewSQLCursor(rows)
		if err != nil {
			yield(nil, err)
			return
		}
		for item, err := range Materialize(ctx, def, cursor, opts...) {
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// QueryAll is Query collected into a slice.
func QueryAll[T any](ctx context.Context, exec boil.ContextExecutor, def Definition[T], opts []Option, query string, args ...any) ([]*T, error) {
	var out []*T
	for item, err := range Query(ctx, exec, def, opts, query, args...) {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
