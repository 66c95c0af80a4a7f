package mapper

import (
	"reflect"
	"strings"
)

// boundField is a binding resolved against one cursor layout.
type boundField[T any] struct {
	binder  binder[T]
	column  string
	ordinal int
}

// columnIndex maps lower-cased column names to their first position.
func columnIndex(c Cursor) map[string]int {
	n := c.ColumnCount()
	idx := make(map[string]int, n)
	for i := 0; i < n; i++ {
		key := strings.ToLower(c.ColumnName(i))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

// adapt resolves every binding of m to a position of c. A mapping with registration
// errors fails first; then every binding whose column is absent is reported together.
func adapt[T any](m *Mapping[T], c Cursor, o Options) ([]boundField[T], error) {
	if err := m.Err(); err != nil {
		return nil, err
	}
	idx := columnIndex(c)
	fields := make([]boundField[T], 0, len(m.bindings))
	var missing []*FieldMissingError
	for _, b := range m.bindings {
		bi := b.info()
		ord, ok := idx[strings.ToLower(bi.Column)]
		if !ok {
			missing = append(missing, &FieldMissingError{Column: bi.Column, Member: bi.Member})
			continue
		}
		fields = append(fields, boundField[T]{binder: b, column: bi.Column, ordinal: ord})
	}
	entity := reflect.TypeFor[T]().String()
	if len(missing) > 0 {
		err := &MissingColumnsError{Missing: missing}
		o.Logger.Debug().Str("entity", entity).Strs("missing", err.Columns()).Msg("mapped columns missing from cursor")
		return nil, err
	}
	o.Logger.Debug().Str("entity", entity).Int("bindings", len(fields)).Int("columns", len(idx)).Msg("columns resolved")
	return fields, nil
}
