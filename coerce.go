package mapper

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// coerceFunc converts a non-null raw value into a value of exactly the target type.
type coerceFunc func(raw any, target reflect.Type) (reflect.Value, error)

var (
	scannerType         = reflect.TypeFor[sql.Scanner]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// byType holds conversions for types whose kind alone is ambiguous.
var byType = map[reflect.Type]coerceFunc{
	reflect.TypeFor[time.Time]():       toTime,
	reflect.TypeFor[time.Duration]():   toDuration,
	reflect.TypeFor[[]byte]():          toBytes,
	reflect.TypeFor[json.RawMessage](): toBytes,
}

// byKind is the fallback dispatch table keyed by the target kind.
var byKind = map[reflect.Kind]coerceFunc{
	reflect.Int:     toSigned,
	reflect.Int8:    toSigned,
	reflect.Int16:   toSigned,
	reflect.Int32:   toSigned,
	reflect.Int64:   toSigned,
	reflect.Uint:    toUnsigned,
	reflect.Uint8:   toUnsigned,
	reflect.Uint16:  toUnsigned,
	reflect.Uint32:  toUnsigned,
	reflect.Uint64:  toUnsigned,
	reflect.Float32: toFloat,
	reflect.Float64: toFloat,
	reflect.Bool:    toBool,
	reflect.String:  toString,
}

// isNull reports whether raw is an external null marker: nil, a nil pointer, or a
// driver.Valuer (sql.Null*, null.*) whose value is nil.
func isNull(raw any) bool {
	if raw == nil {
		return true
	}
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return true
	}
	if v, ok := raw.(driver.Valuer); ok {
		dv, err := v.Value()
		return err == nil && dv == nil
	}
	return false
}

// coerce converts raw into target. Null raw values yield the zero value.
func coerce(raw any, target reflect.Type) (reflect.Value, error) {
	if isNull(raw) {
		return reflect.Zero(target), nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Type().AssignableTo(target) {
		out := reflect.New(target).Elem()
		out.Set(rv)
		return out, nil
	}
	if v, ok := raw.(driver.Valuer); ok {
		dv, err := v.Value()
		if err != nil {
			return reflect.Value{}, err
		}
		return coerce(dv, target)
	}
	if target.Kind() == reflect.Pointer {
		elem, err := coerce(raw, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(target.Elem())
		p.Elem().Set(elem)
		return p, nil
	}
	if reflect.PointerTo(target).Implements(scannerType) {
		p := reflect.New(target)
		if err := p.Interface().(sql.Scanner).Scan(raw); err != nil {
			return reflect.Value{}, err
		}
		return p.Elem(), nil
	}
	if target.Implements(enumType) {
		return parseEnum(raw, target)
	}
	if reflect.PointerTo(target).Implements(textUnmarshalerType) {
		text, err := cast.ToStringE(asText(raw))
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(target)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return reflect.Value{}, err
		}
		return p.Elem(), nil
	}
	if fn, ok := byType[target]; ok {
		return fn(raw, target)
	}
	if fn, ok := byKind[target.Kind()]; ok {
		return fn(asText(raw), target)
	}
	return reflect.Value{}, fmt.Errorf("no conversion from %T to %s", raw, target)
}

// asText treats driver byte slices as text for non-byte targets.
func asText(raw any) any {
	if b, ok := raw.([]byte); ok {
		return string(b)
	}
	return raw
}

func toSigned(raw any, target reflect.Type) (reflect.Value, error) {
	n, err := int64Of(asText(raw))
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(target).Elem()
	if out.OverflowInt(n) {
		return reflect.Value{}, fmt.Errorf("%d overflows %s", n, target)
	}
	out.SetInt(n)
	return out, nil
}

func toUnsigned(raw any, target reflect.Type) (reflect.Value, error) {
	n, err := uint64Of(asText(raw))
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(target).Elem()
	if out.OverflowUint(n) {
		return reflect.Value{}, fmt.Errorf("%d overflows %s", n, target)
	}
	out.SetUint(n)
	return out, nil
}

// int64Of reads integer text in base 10 and rejects unsigned values above
// math.MaxInt64 and floats with a fractional part.
func int64Of(raw any) (int64, error) {
	switch v := raw.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	case uint:
		return int64Of(uint64(v))
	case uintptr:
		return int64Of(uint64(v))
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", v)
		}
		return int64(v), nil
	case float32:
		return int64Of(float64(v))
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v has a fractional part", v)
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("%v overflows int64", v)
		}
		return int64(v), nil
	}
	return cast.ToInt64E(raw)
}

// uint64Of is int64Of for unsigned targets; negative values are rejected.
func uint64Of(raw any) (uint64, error) {
	switch v := raw.(type) {
	case string:
		return strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	case float32:
		return uint64Of(float64(v))
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v has a fractional part", v)
		}
		if v < 0 || v >= math.MaxUint64 {
			return 0, fmt.Errorf("%v overflows uint64", v)
		}
		return uint64(v), nil
	}
	return cast.ToUint64E(raw)
}

func toFloat(raw any, target reflect.Type) (reflect.Value, error) {
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(target).Elem()
	if out.OverflowFloat(f) {
		return reflect.Value{}, fmt.Errorf("%g overflows %s", f, target)
	}
	out.SetFloat(f)
	return out, nil
}

func toBool(raw any, target reflect.Type) (reflect.Value, error) {
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(target).Elem()
	out.SetBool(b)
	return out, nil
}

func toString(raw any, target reflect.Type) (reflect.Value, error) {
	s, err := cast.ToStringE(raw)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(target).Elem()
	out.SetString(s)
	return out, nil
}

func toTime(raw any, target reflect.Type) (reflect.Value, error) {
	t, err := cast.ToTimeE(asText(raw))
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(t), nil
}

func toDuration(raw any, target reflect.Type) (reflect.Value, error) {
	d, err := cast.ToDurationE(asText(raw))
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(d), nil
}

func toBytes(raw any, target reflect.Type) (reflect.Value, error) {
	var b []byte
	switch v := raw.(type) {
	case []byte:
		b = append([]byte(nil), v...)
	case string:
		b = []byte(v)
	default:
		return reflect.Value{}, fmt.Errorf("cannot use %T as bytes", raw)
	}
	return reflect.ValueOf(b).Convert(target), nil
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
