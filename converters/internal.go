package converters

import (
	"math"
	"time"

	"github.com/Station-Manager/errors"
)

// CheckString accepts a non-empty string, or the []byte text most drivers return for character columns.
func CheckString(op errors.Op, src any) (string, error) {
	var srcVal string
	switch v := src.(type) {
	case string:
		srcVal = v
	case []byte:
		srcVal = string(v)
	default:
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgParamEmpty)
	}
	return srcVal, nil
}

// CheckFloat64 accepts any float or integer value.
func CheckFloat64(op errors.Op, src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	if i, err := CheckInt64(op, src); err == nil {
		return float64(i), nil
	}
	return 0, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
}

// CheckInt64 accepts any integer value, and floats without a fractional part.
func CheckInt64(op errors.Op, src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return -1, errors.New(op).Errorf("Given parameter overflows int64: %d", v)
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return -1, errors.New(op).Errorf("Given parameter overflows int64: %d", v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return -1, errors.New(op).Errorf("Given parameter has a fractional part: %v", v)
		}
		return int64(v), nil
	}
	return -1, errors.New(op).Errorf("Given parameter not a int64, got %T", src)
}

// CheckTime accepts a time.Time.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	srcVal, ok := src.(time.Time)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	return srcVal, nil
}
