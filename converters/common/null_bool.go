package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper/converters"
	"github.com/aarondl/null/v8"
)

// NullBoolFrom converts a bool, an integer flag (0/1) or null into a null.Bool.
func NullBoolFrom(src any) (any, error) {
	const op errors.Op = "converters.common.NullBoolFrom"
	switch v := src.(type) {
	case nil:
		return null.Bool{}, nil
	case bool:
		return null.BoolFrom(v), nil
	case null.Bool:
		return v, nil
	}
	n, err := converters.CheckInt64(op, src)
	if err != nil {
		return null.Bool{}, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
	}
	return null.BoolFrom(n != 0), nil
}
