package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrInvalidMappingExpression is reported when a selector does not denote a direct member of the entity.
	ErrInvalidMappingExpression = errors.New("mapper: invalid mapping expression")
	// ErrUnboundField is reported when a binding was never given a column name.
	ErrUnboundField = errors.New("mapper: field used without MapField")
	// ErrFieldRebound is reported when MapField is called more than once on a binding.
	ErrFieldRebound = errors.New("mapper: field already mapped to a column")
	// ErrColumnMissing is matched by every FieldMissingError.
	ErrColumnMissing = errors.New("mapper: column missing")
	// ErrCoercion is matched by every CoercionError.
	ErrCoercion = errors.New("mapper: coercion failed")
	// ErrNoRows is returned by First when the cursor yields nothing.
	ErrNoRows = errors.New("mapper: no rows")
)

// FieldMissingError names one binding whose column is absent from the cursor.
type FieldMissingError struct {
	Column string
	Member string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("field %s missing (member %s)", e.Column, e.Member)
}

func (e *FieldMissingError) Unwrap() error { return ErrColumnMissing }

// MissingColumnsError aggregates every missing column of a materialization.
// It is raised before any row is read.
type MissingColumnsError struct {
	Missing []*FieldMissingError
}

func (e *MissingColumnsError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = m.Error()
	}
	return "mapper: key mapping fails: " + strings.Join(parts, "; ")
}

// Unwrap exposes each sub-error to errors.Is and errors.As.
func (e *MissingColumnsError) Unwrap() []error {
	errs := make([]error, len(e.Missing))
	for i, m := range e.Missing {
		errs[i] = m
	}
	return errs
}

// Columns returns the missing column names in binding order.
func (e *MissingColumnsError) Columns() []string {
	cols := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		cols[i] = m.Column
	}
	return cols
}

// CoercionError reports a raw value that could not be converted into its member type.
type CoercionError struct {
	Column string
	Member string
	Value  any
	Target reflect.Type
	Err    error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("mapper: cannot convert %v (%T) into %s for field %s", e.Value, e.Value, e.Target, e.Column)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CoercionError) Is(target error) bool { return target == ErrCoercion }

func (e *CoercionError) Unwrap() error { return e.Err }

// ConverterError annotates an error raised by a custom Converter with the field that produced it.
type ConverterError struct {
	Column string
	Member string
	Err    error
}

func (e *ConverterError) Error() string {
	return fmt.Sprintf("mapper: converter for field %s: %v", e.Column, e.Err)
}

func (e *ConverterError) Unwrap() error { return e.Err }
