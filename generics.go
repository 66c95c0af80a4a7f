package mapper

import "context"

// Generic helpers over Materialize

// All materializes every row into a slice.
func All[T any](ctx context.Context, def Definition[T], cursor Cursor, opts ...Option) ([]*T, error) {
	var out []*T
	for item, err := range Materialize(ctx, def, cursor, opts...) {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// First materializes the first row only and releases the cursor.
func First[T any](ctx context.Context, def Definition[T], cursor Cursor, opts ...Option) (*T, error) {
	for item, err := range Materialize(ctx, def, cursor, opts...) {
		if err != nil {
			return nil, err
		}
		return item, nil
	}
	return nil, ErrNoRows
}
