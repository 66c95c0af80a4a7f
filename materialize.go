package mapper

import (
	"context"
	"fmt"
	"iter"
	"reflect"
)

// Rows streams entities from a cursor one row at a time.
// The caller drives it with Next, so other work can run between rows.
type Rows[T any] struct {
	cursor Cursor
	fields []boundField[T]
	opts   Options
	entity *T
	err    error
	count  int
	closed bool
}

// Open validates def against the cursor's columns and prepares a Rows.
// On error the cursor is closed and no row has been read.
func Open[T any](ctx context.Context, def Definition[T], cursor Cursor, opts ...Option) (*Rows[T], error) {
	o := NewOptions(opts...)
	if err := ctx.Err(); err != nil {
		_ = cursor.Close()
		return nil, err
	}
	fields, err := adapt(def.mapping(), cursor, o)
	if err != nil {
		_ = cursor.Close()
		return nil, err
	}
	return &Rows[T]{cursor: cursor, fields: fields, opts: o}, nil
}

// Next materializes the next row. It returns false when the cursor is exhausted,
// ctx is done, or a field fails; Err tells the cases apart. The cursor is closed
// as soon as Next returns false.
func (r *Rows[T]) Next(ctx context.Context) bool {
	if r.closed {
		return false
	}
	r.entity = nil
	if err := ctx.Err(); err != nil {
		r.fail(err)
		return false
	}
	if !r.cursor.Next() {
		r.err = r.cursor.Err()
		_ = r.Close()
		return false
	}
	item := new(T)
	for _, f := range r.fields {
		raw := r.cursor.Value(f.ordinal)
		if err := f.binder.assign(item, raw, r.opts.isNull(raw)); err != nil {
			r.fail(fmt.Errorf("row %d: %w", r.count+1, err))
			return false
		}
	}
	r.entity = item
	r.count++
	return true
}

// Entity returns the entity produced by the last successful Next.
// The Rows keeps no reference to it after the following Next.
func (r *Rows[T]) Entity() *T { return r.entity }

// Err returns the error, if any, that ended the iteration.
func (r *Rows[T]) Err() error { return r.err }

// Count returns the number of entities materialized so far.
func (r *Rows[T]) Count() int { return r.count }

// Close releases the cursor. It is safe to call more than once.
func (r *Rows[T]) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.entity = nil
	err := r.cursor.Close()
	if err != nil && r.err == nil {
		r.err = err
	}
	r.opts.Logger.Debug().Str("entity", reflect.TypeFor[T]().String()).Int("rows", r.count).Err(r.err).Msg("materialization finished")
	return err
}

func (r *Rows[T]) fail(err error) {
	r.err = err
	r.opts.Logger.Debug().Err(err).Int("row", r.count+1).Msg("materialization aborted")
	_ = r.Close()
}

// Materialize returns a lazy sequence of entities read from cursor.
// A validation failure is yielded once as (nil, err) before any row is read; a row
// failure is yielded as (nil, err) and ends the sequence. The cursor is closed when
// the range loop ends, including on break.
func Materialize[T any](ctx context.Context, def Definition[T], cursor Cursor, opts ...Option) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		rows, err := Open(ctx, def, cursor, opts...)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()
		for rows.Next(ctx) {
			if !yield(rows.Entity(), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}
