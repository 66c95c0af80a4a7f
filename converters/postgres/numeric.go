package postgres

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper/converters"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
)

// Numeric converts a NUMERIC column to types.Decimal. lib/pq and pgx return NUMERIC
// as text, so the value is parsed without going through float64.
func Numeric(src any) (any, error) {
	const op errors.Op = "converters.postgres.Numeric"
	d, err := parseBig(op, src)
	if err != nil {
		return types.Decimal{}, err
	}
	return types.NewDecimal(d), nil
}

// NullNumeric is Numeric for nullable columns; null becomes an invalid types.NullDecimal.
func NullNumeric(src any) (any, error) {
	const op errors.Op = "converters.postgres.NullNumeric"
	if src == nil {
		return types.NullDecimal{}, nil
	}
	d, err := parseBig(op, src)
	if err != nil {
		return types.NullDecimal{}, err
	}
	return types.NewNullDecimal(d), nil
}

func parseBig(op errors.Op, src any) (*decimal.Big, error) {
	switch v := src.(type) {
	case float64:
		return new(decimal.Big).SetFloat64(v), nil
	case int64:
		return new(decimal.Big).SetMantScale(v, 0), nil
	}
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	d, ok := new(decimal.Big).SetString(srcVal)
	if !ok || d.IsNaN(0) {
		return nil, errors.New(op).Errorf("%s: %q", converters.ErrMsgBadNumber, srcVal)
	}
	return d, nil
}
