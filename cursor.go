package mapper

// Cursor is the forward-only row source the materializer reads.
// Positions are zero-based and stable for the lifetime of the cursor.
type Cursor interface {
	ColumnCount() int
	ColumnName(i int) string
	// Next advances to the next row and reports whether one is available.
	Next() bool
	// Value returns the raw value at position i of the current row; nil means null.
	Value(i int) any
	Err() error
	Close() error
}

// StaticCursor serves rows that are already in memory.
type StaticCursor struct {
	columns []string
	rows    [][]any
	pos     int
	closed  bool
}

// NewStaticCursor returns a cursor over rows, each holding one value per column.
func NewStaticCursor(columns []string, rows ...[]any) *StaticCursor {
	return &StaticCursor{columns: columns, rows: rows, pos: -1}
}

func (c *StaticCursor) ColumnCount() int { return len(c.columns) }

func (c *StaticCursor) ColumnName(i int) string { return c.columns[i] }

func (c *StaticCursor) Next() bool {
	if c.closed || c.pos+1 >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *StaticCursor) Value(i int) any {
	row := c.rows[c.pos]
	if i >= len(row) {
		return nil
	}
	return row[i]
}

func (c *StaticCursor) Err() error { return nil }

func (c *StaticCursor) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (c *StaticCursor) Closed() bool { return c.closed }

// Consumed returns how many rows have been advanced over.
func (c *StaticCursor) Consumed() int { return c.pos + 1 }
