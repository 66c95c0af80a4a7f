package converters

import (
	"math"
	"strconv"

	"github.com/Station-Manager/errors"
)

// ScaleToInt64 returns a converter parsing decimal text (or a float) and storing it
// multiplied by factor and rounded, e.g. MHz text to integer Hz with factor 1e6.
func ScaleToInt64(factor float64) func(src any) (any, error) {
	return func(src any) (any, error) {
		const op errors.Op = "converters.ScaleToInt64"
		var val float64
		switch src.(type) {
		case string, []byte:
			s, err := CheckString(op, src)
			if err != nil {
				return nil, errors.New(op).Err(err)
			}
			if val, err = strconv.ParseFloat(s, 64); err != nil {
				return nil, errors.New(op).Err(err).Msg(ErrMsgBadNumber)
			}
		default:
			f, err := CheckFloat64(op, src)
			if err != nil {
				return nil, errors.New(op).Err(err)
			}
			val = f
		}
		return int64(math.Round(val * factor)), nil
	}
}

// FormatScaled returns a converter dividing an integer column by divisor and formatting it
// with prec decimals, e.g. integer Hz to "14.320" MHz with divisor 1e6 and prec 3.
func FormatScaled(divisor float64, prec int) func(src any) (any, error) {
	return func(src any) (any, error) {
		const op errors.Op = "converters.FormatScaled"
		srcVal, err := CheckInt64(op, src)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		return strconv.FormatFloat(float64(srcVal)/divisor, 'f', prec, 64), nil
	}
}
