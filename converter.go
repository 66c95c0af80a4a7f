package mapper

import (
	"fmt"
	"reflect"
)

// Converter replaces the built-in coercion for one binding. It receives the column
// name, the raw column value (nil for a null without a configured default) and the
// member type, and returns a value assignable to that type. A nil result stores the zero value.
type Converter interface {
	ConvertTo(field string, raw any, target reflect.Type) (any, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(field string, raw any, target reflect.Type) (any, error)

func (f ConverterFunc) ConvertTo(field string, raw any, target reflect.Type) (any, error) {
	return f(field, raw, target)
}

// ValueConverter adapts a single-argument converter, such as those in the converters
// packages, to the Converter interface.
func ValueConverter(fn func(src any) (any, error)) Converter {
	return ConverterFunc(func(_ string, raw any, _ reflect.Type) (any, error) { return fn(raw) })
}

// ComposeConverters chains single-argument converters left-to-right.
// If any converter returns an error it aborts.
// Nil output propagates immediately.
func ComposeConverters(fns ...func(src any) (any, error)) Converter {
	return ValueConverter(func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	})
}

// MapString returns a converter function applying f when src is a string or []byte; otherwise src is returned unchanged.
func MapString(f func(string) string) func(src any) (any, error) {
	return func(src any) (any, error) {
		switch s := src.(type) {
		case string:
			return f(s), nil
		case []byte:
			return f(string(s)), nil
		}
		return src, nil
	}
}

// converted checks a converter result against the member type.
func converted[F any](out any, target reflect.Type) (F, error) {
	var zero F
	if out == nil {
		return zero, nil
	}
	if v, ok := out.(F); ok {
		return v, nil
	}
	cv := reflect.ValueOf(out)
	if cv.Kind() == reflect.Pointer && cv.IsNil() {
		return zero, nil
	}
	return zero, fmt.Errorf("converter returned type %s, expected %s", cv.Type(), target)
}
