// Package mapper binds typed entities to rows produced by a query, without per-entity parsing code.
//
// A Mapping declares, for a struct type, which member is filled from which column, with an
// optional default for nulls and an optional custom converter. The materializer validates the
// mapping against a cursor's columns once, then streams freshly populated entities row by row.
//
// # Basic Usage
//
//	m := mapper.MustBuild(func(m *mapper.Mapping[Car]) {
//	    mapper.Property(m, func(c *Car) *string { return &c.ID }).MapField("ID")
//	    mapper.Property(m, func(c *Car) *int64 { return &c.HorsePower }).DefaultIfNull(-1).MapField("HORSE_POWER")
//	})
//	for car, err := range mapper.Materialize(ctx, m, cursor) {
//	    ...
//	}
//
// # Definitions
//
// A mapping is built either inline with Build/MustBuild, or once in the constructor of a named
// type embedding *Mapping[T]:
//
//	type CarMapping struct{ *mapper.Mapping[Car] }
//
//	func NewCarMapping() CarMapping {
//	    m := mapper.New[Car]()
//	    mapper.Property(m, func(c *Car) *string { return &c.ID }).MapField("ID")
//	    return CarMapping{m}
//	}
//
// Both satisfy Definition and behave identically. A mapping is read-only once built and may be
// shared by concurrent materializations.
//
// Selectors must return the address of a field of their argument. Anything else (a computed
// value, a pointer reached through a nil pointer field, a foreign variable) is recorded as
// ErrInvalidMappingExpression and reported by Err, Build and every materialization.
//
// # Materialization Rules
//
// Before reading any row:
//  1. Every registration error, including bindings never given a column, fails the call
//  2. Columns are matched case-insensitively; every missing column is reported in one MissingColumnsError
//
// For every row, in binding order:
//  1. A null value (nil, a nil pointer, or a driver.Valuer yielding nil) stores the binding's default when one was set
//  2. Otherwise the binding's Converter, if any, produces the value (it receives nil for nulls)
//  3. Otherwise the built-in coercion runs; nulls become the zero value
//
// # Coercion
//
// Pointer members are filled through their element type. Types implementing sql.Scanner
// (null.String, sql.NullInt64, types.Decimal, ...) receive the raw value through Scan. Types
// implementing Enum are matched by member name, ignoring case. Types implementing
// encoding.TextUnmarshaler receive the value's text. time.Time, time.Duration and []byte have
// dedicated conversions; every other numeric, bool and string kind goes through spf13/cast with
// overflow checks. Integer text is read in base 10, so "010" is 10. A float with a fractional
// part is rejected for an integer member instead of being truncated.
//
// # Consumption
//
// Materialize returns an iter.Seq2 for range loops. Open returns a Rows that the caller advances
// with Next, which is the form to use when other work must be interleaved between rows. The
// cursor is closed on every exit path. Query and QueryAll run a SQL query through any sqlboiler
// executor and materialize its result with the given options.
package mapper
