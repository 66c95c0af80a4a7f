package sqlite

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper/converters"
)

// IntegerBool converts SQLite's INTEGER 0/1 booleans to bool.
func IntegerBool(src any) (any, error) {
	const op errors.Op = "converters.sqlite.IntegerBool"
	if b, ok := src.(bool); ok {
		return b, nil
	}
	n, err := converters.CheckInt64(op, src)
	if err != nil {
		return false, errors.New(op).Err(err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.New(op).Errorf("Given integer is not a boolean flag: %d", n)
}
